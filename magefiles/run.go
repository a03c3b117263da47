//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the testbed window with glrhi.toml.
func (Run) Testbed() error {
	mg.Deps(Build.All)
	fmt.Println("Run testbed...")
	if _, err := executeCmd("bin/testbed", withArgs("-config", "glrhi.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders a few frames and writes the result to bin/testbed.bmp.
func (Run) Screenshot() error {
	mg.Deps(Build.All)
	_, err := executeCmd("bin/testbed", withArgs("-config", "glrhi.toml", "-screenshot", "bin/testbed.bmp"), withStream())
	return err
}

/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/glrhi/engine"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/testbed"
)

func main() {
	configPath := flag.String("config", "glrhi.toml", "TOML configuration file")
	assetsDir := flag.String("assets", "assets", "directory holding the testbed shaders and textures")
	screenshot := flag.String("screenshot", "", "write a BMP of the rendered frame to this path")
	screenshotFrame := flag.Uint64("screenshot-frame", 60, "frame to capture with -screenshot")
	flag.Parse()

	tb := testbed.NewTestGame(*configPath, *assetsDir, *screenshot, *screenshotFrame)

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("failed to create engine: %s", err)
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("failed to initialize engine: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the GL context belongs to the main thread, so the handler only stops
	// the loop and shutdown happens below
	go func() {
		<-sigCh
		e.Stop()
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
	if runErr != nil {
		core.LogFatal("engine stopped: %s", runErr)
	}
}

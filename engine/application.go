package engine

import (
	"github.com/spaghettifunk/glrhi/engine/config"
	"github.com/spaghettifunk/glrhi/engine/renderer"
)

type ApplicationConfig struct {
	// The application name used in log lines.
	Name string
	// TOML file read at boot and watched for changes. Empty uses the defaults.
	ConfigPath string
	// Watch ConfigPath and apply the log level while running.
	HotReload bool
	Renderer  renderer.RendererType
}

func (c *ApplicationConfig) load() (*config.Config, error) {
	if c.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.ConfigPath)
}

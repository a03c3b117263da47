package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/glrhi/engine/core"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type WindowConfig struct {
	// Window starting position x axis, if applicable.
	PosX uint32 `toml:"pos_x"`
	// Window starting position y axis, if applicable.
	PosY   uint32 `toml:"pos_y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	// The application name used in windowing.
	Title string `toml:"title"`
	// Multisample count of the default framebuffer, 0 disables it.
	Samples int  `toml:"samples"`
	VSync   bool `toml:"vsync"`
}

type DeviceConfig struct {
	// Apply state and sampler changes as soon as they are set instead of
	// before the next draw.
	ImmediateCommit bool `toml:"immediate_commit"`
	// Re-apply the default states unconditionally at the start of every frame.
	ForceInitOnBegin bool `toml:"force_init_on_begin"`
	// Emulate the fixed function path with built in shader programs.
	FixedPipelineUseShader bool `toml:"fixed_pipeline_use_shader"`
	// Install the driver debug callback and verify driver status after
	// object creation.
	Debug bool `toml:"debug"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// Optional rotated log file mirrored from stderr.
	File      string `toml:"file"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

/**
 * @brief Application configuration, loaded from a TOML file.
 */
type Config struct {
	Window WindowConfig `toml:"window"`
	Device DeviceConfig `toml:"device"`
	Log    LogConfig    `toml:"log"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			PosX:    100,
			PosY:    100,
			Width:   1280,
			Height:  720,
			Title:   "glrhi",
			Samples: 4,
			VSync:   true,
		},
		Device: DeviceConfig{
			ImmediateCommit:        true,
			ForceInitOnBegin:       true,
			FixedPipelineUseShader: true,
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		core.LogInfo("config file %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, rejecting unknown keys.
func Decode(data []byte, cfg *Config) error {
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("samples %d: %w", c.Window.Samples, ErrInvalidConfig)
	}
	if _, err := core.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() core.LogLevel {
	level, err := core.ParseLogLevel(c.Log.Level)
	if err != nil {
		return core.InfoLevel
	}
	return level
}

// ApplyLogging configures the logging facade from the log section.
func (c *Config) ApplyLogging() error {
	core.SetLogLevel(c.LogLevel())
	return core.SetLogFile(c.Log.File, c.Log.MaxSizeMB)
}

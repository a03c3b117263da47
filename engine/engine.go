package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/spaghettifunk/glrhi/engine/config"
	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/platform"
	"github.com/spaghettifunk/glrhi/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool
	isSuspended  bool
	config       *config.Config
	watcher      *config.Watcher
	platform     *platform.Platform
	renderer     *renderer.Renderer
	metrics      *core.Metrics
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64
}

// New loads the configuration and prepares the logging facade. Nothing
// touches the window system until Initialize.
func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game without application config: %w", config.ErrInvalidConfig)
	}
	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		platform:     platform.New(),
	}

	cfg, err := g.ApplicationConfig.load()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if err := cfg.ApplyLogging(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	e.config = cfg
	e.width = cfg.Window.Width
	e.height = cfg.Window.Height
	e.currentStage = EngineStageBootComplete

	core.LogInfo("%s booted with config %q", g.ApplicationConfig.Name, g.ApplicationConfig.ConfigPath)
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	if err := e.platform.Startup(e.config.Window); err != nil {
		return err
	}

	r, err := renderer.New(e.gameInstance.ApplicationConfig.Renderer, e.platform, e.config, e.metrics)
	if err != nil {
		return err
	}
	if err := r.Initialize(); err != nil {
		return err
	}
	e.renderer = r
	e.gameInstance.Renderer = r

	width, height, _ := e.platform.FramebufferSize()
	if width != 0 && height != 0 {
		e.width, e.height = width, height
		e.renderer.OnResize(width, height)
	}

	app := e.gameInstance.ApplicationConfig
	if app.HotReload && app.ConfigPath != "" {
		w, err := config.NewWatcher(app.ConfigPath)
		if err != nil {
			// the engine runs fine without reloads
			core.LogWarn("config hot reload disabled: %s", err)
		} else {
			e.watcher = w
		}
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.isRunning.Store(true)

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}
		e.applyConfigChanges()
		e.checkResize()

		if e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := platform.GetAbsoluteTime()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("game update failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		if err := e.renderer.DrawFrame(delta, e.gameInstance.FnRender); err != nil {
			core.LogError("game render failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		frameElapsedTime := platform.GetAbsoluteTime() - frameStartTime
		if e.metrics.Update(frameElapsedTime) {
			e.logMetrics()
		}

		e.lastTime = currentTime
	}

	return nil
}

// Stop asks the run loop to return after the current frame. Safe to call
// from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogError(err.Error())
		}
		e.watcher = nil
	}
	if e.renderer != nil {
		if err := e.renderer.Shutdown(); err != nil {
			return err
		}
		e.renderer = nil
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return core.SetLogFile("", 0)
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) checkResize() {
	width, height, resized := e.platform.FramebufferSize()
	if resized {
		e.onResized(width, height)
	}
}

func (e *Engine) onResized(width, height uint32) {
	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if e.renderer != nil {
		e.renderer.OnResize(width, height)
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
}

// applyConfigChanges drains the watcher. Only the logging section is applied
// live; device options are fixed once the renderer is initialized.
func (e *Engine) applyConfigChanges() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-e.watcher.Changes():
		if ok {
			e.applyConfig(cfg)
		}
	default:
	}
}

func (e *Engine) applyConfig(cfg *config.Config) {
	if cfg.Log.Level != e.config.Log.Level {
		core.SetLogLevel(cfg.LogLevel())
		core.LogInfo("log level changed to %s", cfg.LogLevel())
		e.config.Log.Level = cfg.Log.Level
	}
	if cfg.Device != e.config.Device {
		core.LogWarn("device options changed on disk, restart to apply them")
	}
}

func (e *Engine) logMetrics() {
	f := e.metrics.Frame
	core.LogDebug("fps=%.0f frame=%.2fms draws=%d dispatches=%d commits=%d vao=%d/%d pipelines=%d/%d",
		e.metrics.FPS, e.metrics.FrameTime(), f.Draws, f.Dispatches, f.StateCommits,
		f.VAOCacheHits, f.VAOCacheMisses, f.PipelineHits, f.PipelineMisses)
}

package main

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/threat-shooter/audio"
	"github.com/lixenwraith/threat-shooter/config"
	"github.com/lixenwraith/threat-shooter/core"
	"github.com/lixenwraith/threat-shooter/engine"
	"github.com/lixenwraith/threat-shooter/input"
	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/render/renderer"
	"github.com/lixenwraith/threat-shooter/status"
	"github.com/lixenwraith/threat-shooter/system"
	"github.com/lixenwraith/threat-shooter/telemetry"
	"github.com/lixenwraith/threat-shooter/user"
)

// App wires the game, terminal, storage, audio and telemetry together
type App struct {
	cfg *config.Config
	log zerolog.Logger

	screen       tcell.Screen
	orchestrator *render.RenderOrchestrator
	debug        *renderer.DebugRenderer
	machine      *input.Machine

	status    *status.Registry
	game      *system.Game
	scheduler *engine.ClockScheduler
	ui        *UI

	store    *user.Store
	sound    *audio.SoundManager
	recorder telemetry.SessionRecorder
	metrics  metric.Registration

	view    atomic.Pointer[render.Viewport] // Written on the scheduler goroutine, read by input
	resized atomic.Bool
}

// NewApp opens every dependency; failures of optional services degrade instead of aborting
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      log,
		status:   status.NewRegistry(),
		machine:  input.NewMachine(),
		recorder: telemetry.NopRecorder{},
	}

	a.openStore()
	a.openAudio()
	a.openTelemetry()

	opts := system.DefaultOptions()
	opts.Width = cfg.Game.Width
	opts.Height = cfg.Game.Height
	opts.Difficulty = cfg.Game.Difficulty
	opts.PlayerSpeed = cfg.Game.PlayerSpeed
	opts.HitTest = system.ParseHitTest(cfg.Game.HitTest)
	if a.sound != nil {
		opts.Sound = a.sound
	}
	a.game = system.NewGame(opts, a.status, log)

	a.ui = NewUI(a.store, a.recorder, a.machine, a.game, log)
	a.game.Register(a.ui)

	screen, err := tcell.NewScreen()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	core.SetCrashCleanup(screen.Fini)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(render.Style(render.RgbHUDValue))

	w, h := screen.Size()
	a.orchestrator = render.NewRenderOrchestrator(screen, w, h)
	a.debug = renderer.RegisterAll(a.orchestrator, a.status)
	a.setViewport(w, h)

	a.scheduler = engine.NewClockScheduler(a.game, cfg.Game.TickInterval, a.renderFrame)
	return a, nil
}

func (a *App) openStore() {
	backend, err := user.NewBackend(a.cfg.Storage, a.log)
	if err != nil {
		a.log.Warn().Err(err).Str("type", a.cfg.Storage.Type).Msg("storage unavailable, using memory")
		backend = user.NewMemoryBackend()
	}
	a.store = user.NewStore(backend, a.log)
	if err := a.store.Load(); err != nil {
		a.log.Warn().Err(err).Msg("failed to load users")
	}
}

func (a *App) openAudio() {
	if !a.cfg.Audio.Enabled {
		return
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		a.log.Warn().Err(err).Msg("audio unavailable, running silent")
		return
	}
	a.sound = sm
}

func (a *App) openTelemetry() {
	if a.cfg.Telemetry.Metrics.Enabled {
		reg, err := telemetry.RegisterMetrics(telemetry.Meter(), a.status)
		if err != nil {
			a.log.Warn().Err(err).Msg("metrics disabled")
		} else {
			a.metrics = reg
		}
	}
	if a.cfg.Telemetry.Influx.Enabled {
		rec, err := telemetry.NewInfluxRecorder(a.cfg.Telemetry.Influx, a.log)
		if err != nil {
			a.log.Warn().Err(err).Str("url", a.cfg.Telemetry.Influx.URL).Msg("session history disabled")
			return
		}
		a.recorder = rec
	}
}

// Run starts the simulation and blocks until the player quits
func (a *App) Run() {
	a.scheduler.Start()
	core.Go(a.pollInput)

	a.log.Info().Msg("app running")
	<-a.ui.Quit()
	a.scheduler.Stop()
	a.log.Info().Uint64("ticks", a.scheduler.TickCount()).Msg("app stopped")
}

// pollInput converts terminal events into game events until the screen is finalized
func (a *App) pollInput() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		in := a.machine.Process(ev)
		if in == nil {
			continue
		}

		if gev, ok := input.Translate(in, *a.view.Load()); ok {
			a.game.Push(gev)
			continue
		}

		switch in.Type {
		case input.IntentResize:
			a.screen.Sync()
			a.resized.Store(true)
		case input.IntentToggleMute:
			if a.sound != nil {
				a.sound.ToggleMute()
			}
		case input.IntentToggleDebug:
			a.debug.Toggle()
		}
	}
}

// renderFrame runs on the scheduler goroutine after every tick
func (a *App) renderFrame() {
	if a.resized.CompareAndSwap(true, false) {
		w, h := a.screen.Size()
		a.orchestrator.Resize(w, h)
		a.setViewport(w, h)
	}

	w, h := a.orchestrator.Size()
	state := a.ui.State()
	state.Muted = a.sound == nil || !a.sound.IsEnabled()

	a.orchestrator.RenderFrame(render.RenderContext{
		Snap:         a.game.Snapshot(),
		UI:           state,
		View:         *a.view.Load(),
		Frame:        a.game.Frame(),
		ScreenWidth:  w,
		ScreenHeight: h,
	})
}

func (a *App) setViewport(w, h int) {
	ww, wh := a.game.Size()
	v := render.NewViewport(w, h, ww, wh)
	a.view.Store(&v)
}

// Close releases the terminal and every service in reverse order of opening
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Fini()
	}
	a.recorder.Close()
	if a.metrics != nil {
		if err := a.metrics.Unregister(); err != nil {
			a.log.Warn().Err(err).Msg("failed to unregister metrics")
		}
	}
	if a.sound != nil {
		a.sound.Cleanup()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close user store")
		}
	}
}

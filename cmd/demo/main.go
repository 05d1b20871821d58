package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chewxy/math32"

	"render-demo/core"
	"render-demo/gpu"
	"render-demo/internal/config"
	"render-demo/internal/opengl"
	"render-demo/math"
	"render-demo/scene"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file (defaults when empty)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gpu.SetLogger(logger)

	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev, err := opengl.New()
	if err != nil {
		return err
	}

	drawables, err := buildDrawables(dev, cfg)
	if err != nil {
		return err
	}
	s, err := scene.New(dev, newCamera(cfg.Camera), drawables...)
	if err != nil {
		return err
	}
	defer s.Destroy()

	bg := cfg.Background
	s.Background = core.Color{R: bg[0], G: bg[1], B: bg[2], A: 1}
	s.Resize(window.GetFramebufferSize())
	s.SetWireframe(cfg.Wireframe)

	status := NewStatusLine(cfg.Window.Title, time.Now())
	status.SetMode("wireframe", cfg.Wireframe)
	loop := &demoLoop{scene: s, status: status}

	interval := time.Second / time.Duration(cfg.FrameRate)
	slog.Info("demo running", "drawables", s.Len(), "frame_rate", cfg.FrameRate)

	for !window.ShouldClose() {
		start := time.Now()

		if quit := loop.handle(window.PollEvents()); quit {
			break
		}
		if !loop.paused {
			s.Tick()
		}
		if err := s.Render(); err != nil {
			return err
		}
		window.SwapBuffers()

		if status.Frame(time.Now()) {
			window.SetTitle(status.String())
		}
		if wait := interval - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
	}
	slog.Info("demo stopped")
	return nil
}

// demoLoop applies window events to the scene.
type demoLoop struct {
	scene  *scene.Scene
	status *StatusLine
	paused bool
}

// handle processes one frame's events and reports whether to quit.
func (l *demoLoop) handle(events []core.Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			return true
		case core.EventResize:
			l.scene.Resize(ev.Width, ev.Height)
		case core.EventKeyDown:
			switch ev.Key {
			case core.KeyEscape, core.KeyQ:
				return true
			case core.KeyF:
				l.setWireframe(false)
			case core.KeyL:
				l.setWireframe(true)
			case core.KeyP, core.KeySpace:
				l.paused = !l.paused
				l.status.SetMode("paused", l.paused)
			}
		}
	}
	return false
}

func (l *demoLoop) setWireframe(on bool) {
	l.scene.SetWireframe(on)
	l.status.SetMode("wireframe", on)
}

func newCamera(c config.Camera) *scene.Camera {
	cam := scene.NewCamera()
	cam.LookAt(vec3(c.Eye), vec3(c.Target), vec3(c.Up))
	cam.FOV = c.FOV * math32.Pi / 180
	return cam
}

func vec3(v [3]float32) math.Vec3 { return math.NewVec3(v[0], v[1], v[2]) }

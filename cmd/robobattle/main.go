package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/robobattle"
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/game"
	"github.com/oomph-ac/robobattle/oerror"
	"github.com/oomph-ac/robobattle/robot"
	_ "github.com/oomph-ac/robobattle/robot/bots"
	"github.com/oomph-ac/robobattle/settings"
	"github.com/oomph-ac/robobattle/view"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// The following program runs a battle between the controllers named on the command line, or the roster
// from the settings file if none are named.
func main() {
	configPath := flag.String("config", "robobattle.toml", "path to the settings file, .toml or .yaml")
	showView := flag.Bool("view", false, "draw the arena in the terminal while the battle runs")
	list := flag.Bool("list", false, "list the available controllers and exit")
	flag.Parse()

	if *list {
		for _, name := range robot.Names() {
			fmt.Println(name)
		}
		return
	}

	s, err := readSettings(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := newLogger(s)

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warnf("unable to initialise sentry: %v", err)
		}
		defer sentry.Flush(5 * time.Second)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = s.Robots
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []robobattle.Option{robobattle.WithRecoverFunc(reportPanic)}
	if step := s.TimeStep(); step > 0 {
		opts = append(opts, robobattle.WithClock(robobattle.NewStepClock(time.Now(), step)))
	}

	var v *view.Viewer
	if *showView {
		if v, err = newViewer(s, cancel); err != nil {
			log.Errorf("unable to start the viewer: %v", err)
			os.Exit(1)
		}
		defer v.Close()
		opts = append(opts, robobattle.WithObserver(v))
		// The screen owns the terminal, so logs would only corrupt it.
		log.Out = io.Discard
	}

	b := robobattle.New(log, s, opts...)
	arena := b.Arena()
	for i, name := range names {
		f, err := robot.Lookup(name)
		if err != nil {
			log.Warnf("skipping controller: %v", err)
			continue
		}
		b.Add(name, game.SpawnPosition(arena, name, i), f)
	}

	res, err := b.Run(ctx)
	if v != nil {
		v.Close()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(res)
}

// readSettings reads the settings file at path, creating it with the default settings first if it does
// not exist yet.
func readSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

// newLogger returns the logger of the battle, logging at the level from the settings.
func newLogger(s settings.Settings) *logrus.Logger {
	log := logrus.New()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Formatter = &logrus.TextFormatter{ForceColors: true}
	} else {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		log.Warnf("invalid log level %q, using info", s.Log.Level)
		lvl = logrus.InfoLevel
	}
	log.Level = lvl
	return log
}

// reportPanic sends a panic recovered from a controller to sentry. It does nothing if sentry was not
// initialised.
func reportPanic(r entity.Robot, ev event.Event, v any) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("robot", r.Name)
		scope.SetTag("event", ev.Name())
	})
	hub.Recover(oerror.New("controller panic: %v", v))
	hub.Flush(time.Second * 5)
}

// newViewer takes over the terminal to draw the battle on. quit is called when the user asks to stop.
func newViewer(s settings.Settings, quit func()) (*view.Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	v := view.New(screen, game.Arena{Width: s.Arena.Width, Height: s.Arena.Height})
	go v.Listen(quit)
	return v, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-console/audio"
	"github.com/lixenwraith/vi-console/config"
	"github.com/lixenwraith/vi-console/console"
	"github.com/lixenwraith/vi-console/core"
	"github.com/lixenwraith/vi-console/engine"
	"github.com/lixenwraith/vi-console/script"
	"github.com/lixenwraith/vi-console/service"
	"github.com/lixenwraith/vi-console/terminal"
)

const (
	// debugLogFile is used by -debug when the config names no log file
	debugLogFile = "logs/vi-console.log"

	loopBuffer = 256
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to YAML config file")
	scriptFlag = flag.String("script", "", "Path to YAML script file, overrides config")
	speedFlag  = flag.Int("speed", 0, "Typewriter interval in milliseconds, overrides config")
	splitFlag  = flag.Bool("split", false, "Show a second console that echoes responses")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
	echoFlag   = flag.Bool("echo", false, "Print collected responses on exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the host crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	responses, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-console: %v\n", err)
		os.Exit(1)
	}

	if *echoFlag {
		for _, r := range responses {
			fmt.Println(formatResponse(r))
		}
	}
}

// run hosts the consoles until quit and returns the collected responses
func run() ([]console.Response, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := core.NewLogger(cfg.LogOptions())
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	core.SetCrashLogger(logger)

	sc, err := loadScript(cfg.Script)
	if err != nil {
		return nil, err
	}

	loop := engine.NewLoop(loopBuffer)
	var a *app

	hub := service.NewHub(logger)
	// Events are only posted here; they run once the loop starts, after a is set
	if err := hub.Register(terminal.NewService(true, func(ev tcell.Event) bool {
		return loop.Post(func() { a.handleEvent(ev) })
	})); err != nil {
		return nil, err
	}
	if cfg.Audio.Enabled {
		if err := hub.Register(audio.NewService(cfg.Volume(), logger)); err != nil {
			return nil, err
		}
	}

	if err := hub.InitAll(); err != nil {
		return nil, err
	}
	if err := hub.StartAll(); err != nil {
		return nil, err
	}
	defer hub.StopAll()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := appOptions{
		Config: cfg,
		Script: sc,
		Logger: logger,
		Quit:   cancel,
	}
	if cfg.Audio.Enabled {
		opts.Sound = service.MustGet[*audio.AudioService](hub, "audio").Sound()
	}

	screen := service.MustGet[*terminal.TerminalService](hub, "terminal").Screen()
	a, err = newApp(screen, engine.NewLoopScheduler(loop), opts)
	if err != nil {
		return nil, err
	}
	a.draw()

	err = loop.Run(ctx)
	a.close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}

	logger.Info().Int("responses", len(a.responses)).Msg("console host stopped")
	return a.responses, nil
}

// applyFlags lets command line flags override loaded config
func applyFlags(cfg *config.Config) {
	if *scriptFlag != "" {
		cfg.Script = *scriptFlag
	}
	if *speedFlag > 0 {
		cfg.Speed = *speedFlag
	}
	if *splitFlag {
		cfg.Split = true
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = debugLogFile
		}
	}
}

// loadScript reads the script file, or returns the built-in demo when path is empty
func loadScript(path string) (script.Script, error) {
	if path == "" {
		return demoScript(), nil
	}
	return script.LoadFile(path)
}

func demoScript() script.Script {
	return script.NewStory(
		script.Text("Welcome to vi-console."),
		script.Text("Lines are typed out one character at a time."),
		script.Utterance{
			Text:           "What should I call you?",
			ID:             "name",
			MaxInputLength: script.Limit(24),
		},
	)
}

func formatResponse(r console.Response) string {
	id := r.ID
	if id == "" {
		id = "-"
	}
	return id + "\t" + plainText(r.Value)
}

// Package main is the entry point for the calcstorm calculator.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/calcstorm/internal/app"
	"github.com/dshills/calcstorm/internal/config"
	"github.com/dshills/calcstorm/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.LogLevel),
		Prefix: "calcstorm",
	})

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config:  cfg,
		Backend: term,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Stop()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath string
	logLevel   string
	debug      bool
	noMouse    bool
	writeInit  bool
}

func parseFlags() cliFlags {
	var flags cliFlags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&flags.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&flags.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support")
	flag.BoolVar(&flags.writeInit, "init-config", false, "Write the default config file and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Calcstorm - terminal calculator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: calcstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  0-9 . + - * / %%             Enter numbers and operators\n")
		fmt.Fprintf(os.Stderr, "  = or Enter                  Evaluate\n")
		fmt.Fprintf(os.Stderr, "  c, C, or Backspace          Clear\n")
		fmt.Fprintf(os.Stderr, "  q, Esc, or Ctrl-C           Quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Calcstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flags.writeInit {
		path := flags.configPath
		if path == "" {
			var err error
			path, err = config.Path()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	if flags.logLevel != "" {
		switch flags.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", flags.logLevel)
			os.Exit(1)
		}
	}

	return flags
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags cliFlags) (config.Config, error) {
	var cfg config.Config
	var err error

	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}
	if flags.noMouse {
		cfg.Mouse = false
	}

	return cfg, nil
}

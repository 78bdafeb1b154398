package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/wolfy/internal/app"
	"github.com/five82/wolfy/internal/config"
	"github.com/five82/wolfy/internal/logging"
	"github.com/five82/wolfy/internal/wolfram"
)

// version is set at build time with -ldflags "-X github.com/five82/wolfy/internal/cli.version=..."
var version = "dev"

// env carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type env struct {
	configPath string
	prefsPath  string
	debug      bool
	logLevel   string
	logFormat  string
	units      string
	timeout    int

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the wolfy CLI.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "wolfy",
		Short: "wolfy: Wolfram|Alpha from the terminal",
		Long: "wolfy queries the Wolfram|Alpha simple, short answer, spoken and full APIs.\n" +
			"Set app_id in " + config.DefaultPath() + " or the " + config.AppIDEnv + " environment variable.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	flags.StringVar(&e.prefsPath, "prefs", "", "Console preferences file (default ~/.config/wolfy/prefs.toml)")
	flags.BoolVar(&e.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&e.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&e.logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVar(&e.units, "units", "", "Measurement system (metric, imperial)")
	flags.IntVar(&e.timeout, "timeout", 0, "Timeout in seconds forwarded to the API")

	root.AddCommand(
		newShortCmd(e),
		newSpokenCmd(e),
		newSimpleCmd(e),
		newFullCmd(e),
		newConsoleCmd(e),
		newServeCmd(e),
		newVersionCmd(),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("units") {
		cfg.Units = strings.ToLower(strings.TrimSpace(e.units))
	}
	if cmd.Flags().Changed("timeout") {
		if e.timeout < 0 {
			return fmt.Errorf("--timeout must not be negative")
		}
		cfg.Timeout = e.timeout
	}
	if e.logLevel != "" {
		cfg.LogLevel = e.logLevel
	}
	if e.logFormat != "" {
		cfg.LogFormat = e.logFormat
	}
	if e.debug {
		cfg.LogLevel = "debug"
	}

	e.cfg = cfg
	e.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func (e *env) appOptions() app.Options {
	return app.Options{
		Config:    e.cfg,
		PrefsPath: e.prefsPath,
		UserAgent: userAgent(),
		Logger:    e.logger,
	}
}

// clientOptions route requests through a transport that traces them at DEBUG.
func (e *env) clientOptions() []wolfram.Option {
	traced := &http.Client{Transport: logging.Transport(nil, e.logger)}
	return []wolfram.Option{wolfram.WithHTTPClient(traced), wolfram.WithTimeout(requestTimeout)}
}

func (e *env) client() (*wolfram.Client, error) {
	return app.NewClient(e.cfg, userAgent(), e.clientOptions()...)
}

// unitsOption validates the configured measurement system.
func (e *env) unitsOption() (wolfram.Units, error) {
	return wolfram.ParseUnits(e.cfg.Units)
}

func userAgent() string {
	return "wolfy/" + version
}

// joinInput turns the positional arguments into one query.
func joinInput(args []string) (string, error) {
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		return "", fmt.Errorf("query must not be empty")
	}
	return input, nil
}

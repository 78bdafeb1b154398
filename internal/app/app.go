package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/five82/wolfy/internal/config"
	"github.com/five82/wolfy/internal/gateway"
	"github.com/five82/wolfy/internal/history"
	"github.com/five82/wolfy/internal/prefs"
	"github.com/five82/wolfy/internal/ui"
	"github.com/five82/wolfy/internal/wolfram"
)

// Options configure the wolfy console and gateway.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses default ~/.config/wolfy/prefs.toml
	UserAgent string // empty uses the client default
	Logger    *slog.Logger

	// ClientOptions are applied after the config-derived options.
	ClientOptions []wolfram.Option
}

// NewClient builds a Wolfram|Alpha client from the loaded configuration.
func NewClient(cfg config.Config, userAgent string, extra ...wolfram.Option) (*wolfram.Client, error) {
	opts := append([]wolfram.Option{
		wolfram.WithBaseURL(cfg.BaseURL),
		wolfram.WithUserAgent(userAgent),
	}, extra...)
	client, err := wolfram.NewClient(cfg.AppID, opts...)
	if errors.Is(err, wolfram.ErrMissingAppID) {
		return nil, fmt.Errorf("init wolfram client: %w (set app_id in %s or %s)", err, config.DefaultPath(), config.AppIDEnv)
	}
	if err != nil {
		return nil, fmt.Errorf("init wolfram client: %w", err)
	}
	return client, nil
}

// Run boots the query console until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	units, err := wolfram.ParseUnits(opts.Config.Units)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client, err := NewClient(opts.Config, opts.UserAgent, opts.ClientOptions...)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	store := history.NewStore(history.DefaultLimit)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		ThemeName: userPrefs.Theme,
		Endpoint:  userPrefs.Endpoint,
		PrefsPath: opts.PrefsPath,
		Units:     units,
		Timeout:   opts.Config.Timeout,
	}
	return ui.Run(uiOpts)
}

// Serve runs the HTTP gateway on the configured listen address until the
// context is cancelled.
func Serve(ctx context.Context, opts Options) error {
	client, err := NewClient(opts.Config, opts.UserAgent, opts.ClientOptions...)
	if err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return gateway.New(client, logger).ListenAndServe(ctx, opts.Config.Listen)
}

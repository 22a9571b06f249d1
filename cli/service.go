package cli

import (
	"context"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/sitekit/auth"
	"github.com/viant/sitekit/client"
	"github.com/viant/sitekit/config"
	"github.com/viant/sitekit/navigation"
	"github.com/viant/sitekit/notify"
	"github.com/viant/sitekit/store"
	"io"
	"os"
)

// Service wires the terminal host
type Service struct {
	Config   *config.Config
	Session  *auth.Session
	Client   *client.Client
	Notifier *notify.Notifier
	stdout   io.Writer
}

func New(ctx context.Context, options *Options, stdout, stderr io.Writer) (*Service, error) {
	cfg, err := config.Load(ctx, options.Config)
	if err != nil {
		return nil, err
	}
	if options.BaseURL != "" {
		cfg.BaseURL = options.BaseURL
	}
	if options.Store != "" {
		cfg.StoreURL = options.Store
	}
	if options.Verbose {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	initLogger(cfg.LogLevel, stderr)
	color := *cfg.Color && !options.NoColor

	st, err := store.NewFileStore(ctx, cfg.StoreURL)
	if err != nil {
		return nil, err
	}
	session := auth.NewSession(st)

	var navigator navigation.Navigator = &navigation.Printer{BaseURL: cfg.BaseURL, Writer: stdout}
	if options.Browser {
		navigator = navigation.NewBrowser(cfg.BaseURL)
	}
	log.Debug().Str("baseURL", cfg.BaseURL).Str("store", cfg.StoreURL).Msg("service initialised")
	return &Service{
		Config:   cfg,
		Session:  session,
		Client:   client.New(cfg.BaseURL, session, client.WithNavigator(navigator), client.WithTimeout(cfg.Timeout)),
		Notifier: notify.New(notify.NewWriter(stderr, color), notify.WithTTL(cfg.NotificationTTL)),
		stdout:   stdout,
	}, nil
}

func initLogger(level string, writer io.Writer) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	if writer == nil {
		writer = os.Stderr
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: writer, NoColor: true}).With().Timestamp().Logger()
}

package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/api"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/health"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/api/middleware"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/catalog"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/contact"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/logging"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/metrics"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/watcher"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/session"
	"github.com/carlosceballos0427/mi-pagina-portafolio/pkg/config"
)

var httpAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio site (default)",
	RunE:  runServe,
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&httpAddr, "address", "a", "", "HTTP listen address (overrides config)")
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(configFile)
	if err != nil {
		return err
	}
	if httpAddr != "" {
		cfg.Server.HTTPAddress = httpAddr
	}
	cfg.Verbose = verbose

	logger, level, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := catalog.Validate(catalog.Projects()); err != nil {
		return fmt.Errorf("invalid project catalog: %w", err)
	}

	csrfKey := cfg.Server.CSRFKey
	if csrfKey == "" {
		csrfKey, err = randomCSRFKey()
		if err != nil {
			return err
		}
		logger.Warn("server.csrf_key not set, using a random key; forms break across restarts")
	}

	client, err := contact.NewClient(contact.ClientConfig{Endpoint: cfg.Contact.Endpoint}, logger.Named("contact"))
	if err != nil {
		return fmt.Errorf("create contact client: %w", err)
	}

	flowLogger := logger.Named("flow")
	resetDelay := cfg.ResetDelay()
	sessions := session.NewStore(cfg.SessionTTL(), func(n contact.Notifier) *contact.Flow {
		return contact.NewFlow(client,
			contact.WithNotifier(n),
			contact.WithResetDelay(resetDelay),
			contact.WithLogger(flowLogger))
	}, logger.Named("session"))
	defer sessions.Close()

	limiter := middleware.NewRateLimiter(cfg.Session.PerIPPerMinute, cfg.Session.Burst)
	site, err := web.NewServer(catalog.Projects, sessions, csrfKey, cfg.Server.SecureCookies, logger.Named("web"),
		web.WithSessionLimiter(limiter))
	if err != nil {
		return fmt.Errorf("create web server: %w", err)
	}

	srv, err := api.New(&api.Config{
		Address: cfg.Server.HTTPAddress,
		Verbose: cfg.Verbose,
		Version: api.VersionResponse{
			Version:   config.Version,
			Commit:    config.Commit,
			BuildTime: config.BuildTime,
		},
	}, catalog.Projects, site.Routes(), logger.Named("http"))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	srv.RegisterHealthChecker(health.NewEndpointChecker(client.Endpoint, contact.ValidateEndpoint))
	srv.RegisterHealthChecker(health.NewCatalogChecker(func() error {
		return catalog.Validate(catalog.Projects())
	}))

	metrics.SetBuildInfo(config.Version, config.Commit, config.BuildTime)

	ctx, cancel := signalContext(logger)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	logger.Info("starting portfolio",
		zap.String("version", config.Version),
		zap.String("http_address", cfg.Server.HTTPAddress),
		zap.String("form_endpoint", client.Endpoint()))

	g.Go(func() error {
		return srv.Run(gctx)
	})

	if cfg.Metrics.Enabled {
		metricsSrv := metrics.NewServer(cfg.Metrics.Address, logger.Named("metrics"))
		g.Go(metricsSrv.Start)
		g.Go(func() error {
			<-gctx.Done()
			return metricsSrv.Shutdown(context.Background())
		})
	}

	if cfg.Watch && configFile != "" {
		reloader := &configReloader{
			path:    configFile,
			verbose: cfg.Verbose,
			client:  client,
			level:   level,
			logger:  logger.Named("config"),
		}
		w, err := watcher.New(configFile, reloader.reload, nil, logger.Named("watcher"))
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func randomCSRFKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate csrf key: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// endpointSetter is the part of the contact client a reload touches.
type endpointSetter interface {
	SetEndpoint(endpoint string) error
}

// levelSetter is the part of zap.AtomicLevel a reload touches.
type levelSetter interface {
	SetLevel(l zapcore.Level)
}

// configReloader applies the hot-reloadable settings: the form endpoint and
// the log level. Everything else needs a restart.
type configReloader struct {
	path    string
	verbose bool
	client  endpointSetter
	level   levelSetter
	logger  *zap.Logger
}

func (r *configReloader) reload() {
	cfg, err := resolveConfig(r.path)
	if err != nil {
		metrics.ConfigReloadsTotal.WithLabelValues("failure").Inc()
		r.logger.Warn("config reload rejected, keeping current settings", zap.Error(err))
		return
	}

	if err := r.client.SetEndpoint(cfg.Contact.Endpoint); err != nil {
		metrics.ConfigReloadsTotal.WithLabelValues("failure").Inc()
		r.logger.Warn("config reload rejected, keeping current settings", zap.Error(err))
		return
	}
	if !r.verbose {
		r.level.SetLevel(logging.ParseLevel(cfg.Log.Level))
	}

	metrics.ConfigReloadsTotal.WithLabelValues("success").Inc()
	r.logger.Info("config reloaded",
		zap.String("form_endpoint", cfg.Contact.Endpoint),
		zap.String("log_level", cfg.Log.Level))
}

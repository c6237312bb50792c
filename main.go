package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DavidGamba/go-getoptions"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vitalapp/vital-api/config"
	"github.com/vitalapp/vital-api/db"
	"github.com/vitalapp/vital-api/handlerset"
)

// serviceName is the name reported by the health check.
const serviceName = "VitalApp API"

// version is the service version. It's overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

var log = logrus.WithField("service", "vital-api")

// commandLineOptionValues represents the values of the command-line options that were passed on the command line when
// this service was invoked.
type commandLineOptionValues struct {
	Config string
}

func parseCommandLine() *commandLineOptionValues {
	optionValues := &commandLineOptionValues{}
	opt := getoptions.New()

	// Default option values.
	defaultConfigPath := "/etc/vitalapp/vital-api.yml"

	// Define the command-line options.
	opt.Bool("help", false, opt.Alias("h", "?"))
	opt.StringVar(&optionValues.Config, "config", defaultConfigPath,
		opt.Alias("c"),
		opt.Description("the path to the configuration file; ignored if it doesn't exist"))

	// Parse the command line, handling requests for help and usage errors.
	_, err := opt.Parse(os.Args[1:])
	if opt.Called("help") {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		fmt.Fprint(os.Stderr, opt.Help(getoptions.HelpSynopsis))
		os.Exit(1)
	}

	return optionValues
}

// initLogging configures the global logger.
func initLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warnf("unrecognized log level `%s`, using info", level)
		parsedLevel = logrus.InfoLevel
	}
	logrus.SetLevel(parsedLevel)
}

// serve runs the HTTP server until it fails or the context is cancelled, then shuts it down.
func serve(ctx context.Context, server *http.Server, transport config.Transport) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if transport.Mode == config.TLS {
			log.Infof("listening with HTTPS on %s", server.Addr)
			err = server.ListenAndServeTLS(transport.CertFile, transport.KeyFile)
		} else {
			log.Infof("listening on http://%s", server.Addr)
			err = server.ListenAndServe()
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("received terminate, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	// Parse the command-line.
	optionValues := parseCommandLine()

	// Read in the configuration.
	cfg, err := config.Load(optionValues.Config)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize logging.
	initLogging(cfg.LogLevel)

	// Establish the database connection.
	database, err := db.InitDatabase(db.DriverName, cfg.Database.URI())
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()
	log.WithFields(logrus.Fields{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
		"db":   cfg.Database.Name,
	}).Info("connected to the database")

	// The tables must exist before any request is served.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := db.CreateSchema(ctx, database); err != nil {
		log.Fatal(err)
	}
	if cfg.Seed {
		db.SeedDemoData(ctx, database)
	}

	// Build the handlers.
	handlerSet := handlerset.New(
		db.NewStore(database),
		handlerset.ServiceInfo{Name: serviceName, Version: version},
	)
	handlerSet.Registry.MustRegister(collectors.NewDBStatsCollector(database, "vitalapp"))

	server := &http.Server{
		Addr:              cfg.ListenAddress(),
		Handler:           handlerSet,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := serve(ctx, server, cfg.Transport); err != nil && err != http.ErrServerClosed {
		log.Error(err)
		stop()
		database.Close()
		os.Exit(1)
	}
	log.Info("server stopped")
}

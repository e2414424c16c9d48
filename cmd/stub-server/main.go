// Package main starts the stub backend, serving the health-data and
// message endpoints from sample data for local development.
package main

import (
	"flag"
	"fmt"
	"os"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/star88etti/health-buddie-log/internal/logger"
	"github.com/star88etti/health-buddie-log/internal/server"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	var (
		addr     string
		logLevel string
		showVer  bool
	)
	flag.StringVar(&addr, "a", "localhost:3000", "run on ip:port")
	flag.StringVar(&logLevel, "log-level", "Info", "log level")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("health-buddie stub server\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	// Override flags with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		addr = serverAddress
	}

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	handler := server.NewHandler(nil)
	router := server.NewRouter(handler, zapLogger)

	srv := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting stub backend", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

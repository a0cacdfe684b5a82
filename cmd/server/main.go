package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wso2/professional-profile-service/internal/system/config"
	"github.com/wso2/professional-profile-service/internal/system/constants"
	tracecontext "github.com/wso2/professional-profile-service/internal/system/context"
	"github.com/wso2/professional-profile-service/internal/system/database/provider"
	"github.com/wso2/professional-profile-service/internal/system/log"
	"github.com/wso2/professional-profile-service/internal/system/managers"
	"github.com/wso2/professional-profile-service/internal/system/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	serviceHome := getServiceHome()
	const configFile = "repository/conf/deployment.yaml"

	envFiles, err := config.LoadEnvFiles(serviceHome)
	if err != nil {
		log.GetLogger().Fatal("Failed to load env files", log.Error(err))
	}
	if len(envFiles) == 0 {
		log.GetLogger().Warn("No .env files found in config directory")
	}

	// Load the configuration file
	serviceConfig, err := config.LoadConfig(serviceHome, configFile)
	if err != nil {
		log.GetLogger().Fatal("Failed to load configuration", log.Error(err))
	}

	// Initialize logger
	if err := log.Init(serviceConfig.Log.LogLevel); err != nil {
		log.GetLogger().Fatal("Failed to initialize logger", log.Error(err))
	}
	logger := log.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	store, err := provider.NewDBProvider(logger).OpenStore(ctx, provider.TargetStoreConfig(serviceConfig))
	if err != nil {
		logger.Fatal("Failed to open the profile store", log.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Error("Failed to close the profile store", log.Error(err))
		}
	}()

	serverAddr := fmt.Sprintf("%s:%d", serviceConfig.Addr.Host, serviceConfig.Addr.Port)
	handler := enableCORS(tracecontext.TraceMiddleware(metrics.Middleware()(initMultiplexer(store, serviceConfig))))
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("address", serverAddr), log.Error(err))
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()
	logger.Info("Professional profile service started", log.String("address", serverAddr))

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down the professional profile service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the server gracefully", log.Error(err))
		}
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(store *provider.Store, cfg *config.Config) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, store, cfg)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length, "+constants.TraceIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getServiceHome() string {

	// Parse project directory from command line arguments.
	projectHomeFlag := flag.String("home", "", "Path to professional profile service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		log.GetLogger().Info("Using service home from command line argument", log.String("home", *projectHomeFlag))
		return *projectHomeFlag
	}

	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		log.GetLogger().Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

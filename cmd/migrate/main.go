package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wso2/professional-profile-service/internal/migration/runner"
	"github.com/wso2/professional-profile-service/internal/migration/transformer"
	"github.com/wso2/professional-profile-service/internal/system/config"
	"github.com/wso2/professional-profile-service/internal/system/database/provider"
	"github.com/wso2/professional-profile-service/internal/system/log"
)

const configFile = "repository/conf/deployment.yaml"

type migrateOptions struct {
	home          string
	dryRun        bool
	limit         int
	ensureIndexes bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newMigrateCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newMigrateCmd() *cobra.Command {
	var opts migrateOptions

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Copy raw profile exports into the profile, experience and education collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.home == "" {
				dir, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current working directory: %w", err)
				}
				opts.home = dir
			}
			err := runMigrate(cmd.Context(), cmd, opts, cmd.OutOrStdout())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "migration failed:", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.home, "home", "", "Service home directory (default: current directory)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Transform and count without writing to the target")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Stop after this many source documents (0 migrates everything)")
	cmd.Flags().BoolVar(&opts.ensureIndexes, "ensure-indexes", false, "Create the profile reference indexes before migrating")

	return cmd
}

func runMigrate(ctx context.Context, cmd *cobra.Command, opts migrateOptions, out io.Writer) error {
	if _, err := config.LoadEnvFiles(opts.home); err != nil {
		return err
	}
	cfg, err := config.LoadConfig(opts.home, configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags win over the deployment file when set explicitly.
	if cmd.Flags().Changed("dry-run") {
		cfg.Migration.DryRun = opts.dryRun
	}
	if cmd.Flags().Changed("limit") {
		cfg.Migration.Limit = opts.limit
	}
	if cmd.Flags().Changed("ensure-indexes") {
		cfg.Migration.EnsureIndexes = opts.ensureIndexes
	}
	if cfg.Migration.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", cfg.Migration.Limit)
	}

	logger, err := log.New(cfg.Log.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.SetLogger(logger)

	dbProvider := provider.NewDBProvider(logger)
	targetConfig := provider.TargetStoreConfig(cfg)
	target, err := dbProvider.OpenStore(ctx, targetConfig)
	if err != nil {
		return err
	}
	defer closeStore(logger, "target", target)

	source := target
	if sourceConfig := provider.SourceStoreConfig(cfg); sourceConfig != targetConfig {
		if source, err = dbProvider.OpenStore(ctx, sourceConfig); err != nil {
			return err
		}
		defer closeStore(logger, "source", source)
	}

	migration := &runner.Runner{
		Source:      source.Records,
		Target:      target.Records,
		Transformer: transformer.NewTransformer(logger),
		Logger:      logger,
		Lock:        target.Lock,
		Options: runner.Options{
			DryRun:           cfg.Migration.DryRun,
			Limit:            cfg.Migration.Limit,
			EnsureIndexes:    cfg.Migration.EnsureIndexes,
			SourceCollection: cfg.Source.Collection,
		},
	}
	stats, err := migration.Run(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stats)
}

func closeStore(logger *log.Logger, role string, store *provider.Store) {
	if err := store.Close(context.Background()); err != nil {
		logger.Warn("Failed to close store", log.String("store", role), log.Error(err))
	}
}

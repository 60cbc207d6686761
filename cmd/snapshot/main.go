package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crm_pipeline/internal/adapter/persistence/repository"
	"crm_pipeline/internal/infrastructure/config"
	"crm_pipeline/internal/infrastructure/database"
	"crm_pipeline/internal/infrastructure/localcache"
	"crm_pipeline/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "crm-snapshot",
	Short: "Maintain the local pipeline snapshots",
	Long: `crm-snapshot writes the local snapshots the pipeline service reads as a
placeholder on startup. The service itself never writes them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(exportCmd())
}

func exportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export ORGANIZATION_ID...",
		Short: "Copy the live quotes, invoices and customers of organizations into the snapshot directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if dir != "" {
				cfg.Cache.SnapshotDir = dir
			}
			if cfg.Cache.SnapshotDir == "" {
				return errors.New("snapshot directory not set: use --dir or SNAPSHOT_CACHE_DIR")
			}

			logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
			if err != nil {
				return err
			}
			exporter := localcache.NewExporter(
				repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes),
				repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices),
				repository.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers),
				localcache.NewSnapshotStore(cfg.Cache.SnapshotDir),
				logger,
			)

			var failed int
			for _, org := range args {
				if _, err := exporter.Export(ctx, org); err != nil {
					failed++
					logger.Error("snapshot export failed", zap.String("organization_id", org), zap.Error(err))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d exports failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "snapshot directory (default: SNAPSHOT_CACHE_DIR)")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tracefire-io/tracefire/internal/config"
	"github.com/tracefire-io/tracefire/internal/server"
	"github.com/tracefire-io/tracefire/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the activity service",
	Long: `Run the companion service that records and serves model invocations.

Agents post records over HTTP, or the service imports them from a JSONL file
(optionally tailing it for appended records).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":7416", "listen address")
	serveCmd.Flags().String("db", "", "database path (default ~/.tracefire/tracefire.db)")
	serveCmd.Flags().String("ingest", "", "JSONL file to import on startup")
	serveCmd.Flags().Bool("watch", false, "keep tailing the ingest file for appended records")
	serveCmd.Flags().String("log-file", "", "log file path (default ~/.tracefire/logs/serve.log)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logFile, _ := cmd.Flags().GetString("log-file")
	if err := config.SetupServeLogging(logFile); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		if err := config.EnsureGlobalDir(); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		var err error
		dbPath, err = config.DefaultDatabaseFile()
		if err != nil {
			return err
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	log.WithField("db", dbPath).Info("store opened")

	ingestPath, _ := cmd.Flags().GetString("ingest")
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && ingestPath == "" {
		return fmt.Errorf("--watch requires --ingest")
	}

	if ingestPath != "" && !watch {
		n, err := st.Ingest(ingestPath)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", ingestPath, err)
		}
		log.WithField("records", n).Info("ingest complete")
	}
	if watch {
		tailer, err := store.NewTailer(st, ingestPath)
		if err != nil {
			return fmt.Errorf("failed to create tailer: %w", err)
		}
		if err := tailer.Start(); err != nil {
			return fmt.Errorf("failed to start tailer: %w", err)
		}
		defer tailer.Stop()
	}

	addr, _ := cmd.Flags().GetString("addr")
	srv := server.New(st)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(addr)
	}()

	fmt.Printf("%s listening on %s\n", styleBrand.Render("tracefire"), styleValue.Render(addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

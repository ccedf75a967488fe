package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/niwa/internal/metrics"
	"github.com/vovakirdan/niwa/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the niwa SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the game menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.niwa/host_key

Metrics:
  Prometheus metrics are served on --metrics, or on metrics.address when
  metrics.enabled is set in the config.

Examples:
  niwa serve                           # Listen on :23234 with auto-generated key
  niwa serve --ssh :2222               # Listen on port 2222
  niwa serve --metrics :9090           # Also expose /metrics
  niwa serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics listen address (host:port)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	a := setup(os.Stderr)
	defer a.Close()

	metricsAddr := flagMetricsAddr
	if metricsAddr == "" && a.cfg.Metrics.Enabled {
		metricsAddr = a.cfg.Metrics.Address
	}
	var rec *metrics.Recorder
	if metricsAddr != "" {
		rec = metrics.New()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	server, err := tui.NewSSHServer(cfg, a.env(rec))
	if err != nil {
		a.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting niwa SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	if rec != nil {
		g.Go(func() error {
			return rec.Serve(ctx, metricsAddr, a.logger)
		})
	}

	if err := g.Wait(); err != nil {
		a.Close()
		fail("server: %v", err)
	}
}

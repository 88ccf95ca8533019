package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/courseql/courseql/internal/config"
	"github.com/courseql/courseql/internal/graph"
)

var (
	serveHost         string
	servePort         int
	serveNoPlayground bool
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphiQL playground at /graphql (GET) for interactive queries
  - Health check at /healthz

Examples:
  # Start server on default port 4000
  courseql serve

  # Start server on a custom port without the playground
  courseql serve --port 3000 --no-playground`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("host") {
			cfg.Server.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if serveNoPlayground {
			cfg.Server.Playground = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runServer(cmd.Context())
	},
}

func runServer(parent context.Context) error {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: graph.NewHandler(schema, graph.HandlerOptions{
			Playground: cfg.Server.Playground,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("GraphQL server running",
			"url", serverURL(cfg),
			"courses", store.Len(),
			"playground", cfg.Server.Playground,
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		slog.Info("server stopped")
	}

	return nil
}

// serverURL returns the GraphQL endpoint URL a client can reach. Wildcard
// binds are reported as localhost.
func serverURL(c *config.Config) string {
	host := c.Server.Host
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Server.Port)) + graph.Endpoint
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default all interfaces)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 4000, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveNoPlayground, "no-playground", false, "Disable the GraphiQL playground")
	rootCmd.AddCommand(serveCmd)
}

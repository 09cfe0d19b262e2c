package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/config"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-cookidoo-thermomix",
		Short: "Cookidoo Thermomix MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("transport", "stdio", "Transport to serve on (stdio or http)")
	root.PersistentFlags().String("cookidoo-email", "", "Cookidoo account email")
	root.PersistentFlags().String("cookidoo-country", "", "Cookidoo country code (e.g. fr)")
	root.PersistentFlags().String("cookidoo-language", "", "Cookidoo language tag (e.g. fr-FR)")
	root.PersistentFlags().String("history-dsn", "", "Postgres DSN for the import history store")
	root.PersistentFlags().Int("port", 8000, "HTTP port (http transport)")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP host (http transport)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := mcp.DefaultConfig()
	if err != nil {
		return err
	}
	srv := mcp.New(cfg)
	defer srv.Close()

	transport, _ := cmd.Flags().GetString("transport")
	if transport != "http" {
		return srv.ServeStdio()
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.Log.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

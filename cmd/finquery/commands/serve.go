package commands

import (
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpserver "github.com/finquery/finquery-go/internal/infrastructure/http"
)

// serve: run the HTTP front end until interrupted.
func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ask API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			responder, index, err := buildResponder()
			if err != nil {
				return err
			}
			defer index.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := httpserver.NewServer(responder, addr, log)
			if err := server.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonkurtz-MSFT/drawio-go/internal/server"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	backend   string // memory, file, redis, mongo
	dir       string // file backend directory
	redisAddr string
	mongoURI  string
}

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", backend: "memory"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram HTTP API",
		Long: `Serve exposes diagram models over HTTP. Each diagram id owns one
model instance, loaded from and saved to the selected store backend.

Examples:
  drawio serve
  drawio serve --store file --dir ./diagrams
  drawio serve --store redis --redis-addr localhost:6379
  drawio serve --store mongo --mongo-uri mongodb://localhost:27017`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts.applyConfig(cfg, cmd.Flags().Changed)

			backing, err := newStore(ctx, opts)
			if err != nil {
				return err
			}
			defer backing.Close()

			srv := &http.Server{
				Addr:              opts.addr,
				Handler:           server.New(backing, c.Logger).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("serving", "addr", opts.addr, "store", opts.backend)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				c.Logger.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "store", opts.backend, "store backend: memory, file, redis, mongo")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "diagram directory for the file backend")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb connection URI")

	return cmd
}

// newStore builds the selected store backend.
func newStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	switch opts.backend {
	case "memory":
		return store.NewMemory(), nil
	case "file":
		return store.NewFile(opts.dir)
	case "redis":
		return store.NewRedis(ctx, store.RedisConfig{Addr: opts.redisAddr})
	case "mongo":
		return store.NewMongo(ctx, store.MongoConfig{URI: opts.mongoURI})
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.backend)
	}
}

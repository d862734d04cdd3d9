package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/internal/server"
	"github.com/matzehuels/planforge/pkg/cache"
	planio "github.com/matzehuels/planforge/pkg/io"
)

// defaultServeAddr is the preview server listen address.
const defaultServeAddr = ":8080"

// newServeCmd creates the serve command running the HTTP preview server.
func newServeCmd() *cobra.Command {
	var addr, redisAddr string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Run the HTTP preview server for a plan",
		Long: `Serve loads a plan document and exposes it over HTTP: the document as
JSON, solve and join operations as POST endpoints with undo/redo, and
the assembly diagram as a cached SVG.

The artifact cache defaults to the local file cache; configure a Redis
address to share it between instances.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], addr, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared artifact cache")
	return cmd
}

func runServe(ctx context.Context, input, addr, redisAddr string) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if addr == "" {
		addr = cfg.Server.Addr
	}
	if addr == "" {
		addr = defaultServeAddr
	}
	if redisAddr == "" {
		redisAddr = cfg.Server.RedisAddr
	}

	pl, err := planio.ImportJSON(input)
	if err != nil {
		return err
	}

	var c cache.Cache
	if redisAddr != "" {
		c, err = cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return err
		}
		logger.Infof("Using redis artifact cache at %s", redisAddr)
	} else {
		c, err = newCache(ctx, false)
		if err != nil {
			return err
		}
	}
	defer c.Close()

	srv := server.New(server.Config{Addr: addr, PlanPath: input}, pl, c, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("Preview server listening on %s", addr)
	return srv.Run(ctx)
}

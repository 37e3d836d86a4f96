package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/folio/internal/live"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var (
	serverPort  int
	serverWatch bool
	serverLive  bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the portfolio page with live scroll tracking",
	Long: `Starts an HTTP server that renders the portfolio page, serves its images
and drives each open page's scroll progress and active section over a
WebSocket. With --watch the image directory is reindexed on change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = serverWatch
		}

		lib, err := openLibrary(cfg)
		if err != nil {
			return err
		}
		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, logger)

		liveHandler := live.NewHandler(func() []string {
			return renderer.Sections(lib.Current())
		}, logger)
		if serverLive {
			liveHandler.RegisterRoutes(srv.Router())
		}
		site.RegisterRoutes(srv.Timed(), renderer, lib, serverLive, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(srv.Start)
		g.Go(func() error {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			liveHandler.Close()
			return srv.Shutdown(shutdownCtx)
		})
		if cfg.Watch {
			g.Go(func() error {
				// Serving continues without live reindexing.
				if err := lib.Watch(ctx); err != nil {
					logger.Warn("asset watcher stopped", zap.Error(err))
				}
				return nil
			})
		}

		logger.Info("folio server starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("assets", cfg.AssetDir),
			zap.Int("images", lib.Current().Len()),
			zap.Bool("watch", cfg.Watch),
			zap.Bool("live", serverLive))
		fmt.Fprintf(os.Stderr, "Serving at http://localhost:%d (press Ctrl+C to stop)\n", cfg.Port)

		return g.Wait()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "port to listen on (overrides config)")
	serverCmd.Flags().BoolVar(&serverWatch, "watch", false, "reindex images when the asset directory changes (overrides config)")
	serverCmd.Flags().BoolVar(&serverLive, "live", true, "drive scroll state from the server over /live")
	rootCmd.AddCommand(serverCmd)
}

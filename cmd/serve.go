package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the collection over http",
	Long:  `serve the collection as a json api`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalw("failed to read configurations", "error", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		mgr, closer, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatalw("failed to open movie storage", "error", err)
		}
		defer closer.Close()

		srv := server.New(log, mgr)
		if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
			log.Errorw("server stopped", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

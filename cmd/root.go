package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/shell"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moviedb",
	Short: "manage a personal movie collection",
	Long: `moviedb keeps a personal movie collection in a local json, csv or sqlite file.
Without a subcommand it starts the interactive menu.`,
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

		sh := shell.New(mgr, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithTitle(cfg.Shell.Title))
		if err := sh.Run(ctx); err != nil {
			log.Errorw("shell stopped", "error", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("file", "", "collection file, overrides storage.filePath")
	rootCmd.PersistentFlags().String("format", "", "collection encoding: json, csv or sqlite")

	viper.BindPFlag("storage.filePath", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("storage.format", rootCmd.PersistentFlags().Lookup("format"))
}

const (
	defaultLookupTimeout = time.Second * 5
	defaultCacheTTL      = time.Hour
)

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MOVIEDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("storage.filePath", "movies.json")
	viper.SetDefault("storage.format", "")

	viper.SetDefault("omdb.scheme", "http")
	viper.SetDefault("omdb.host", "www.omdbapi.com")
	viper.SetDefault("omdb.apiKey", "")
	viper.BindEnv("omdb.apiKey", "MOVIEDB_OMDB_APIKEY", "OMDB_API_KEY")
	viper.SetDefault("omdb.timeout", defaultLookupTimeout)
	viper.SetDefault("omdb.maxRetries", 3)
	viper.SetDefault("omdb.backoff", time.Millisecond*500)
	viper.SetDefault("omdb.cacheTTL", defaultCacheTTL)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("shell.title", shell.DefaultTitle)
}

package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/storage/sqlite"
	"github.com/spf13/cobra"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var outputDirectory string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `migrate a scratch sqlite database and generate jet models and tables from it`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		dir, err := os.MkdirTemp("", "moviedb-schema")
		if err != nil {
			log.Fatalw("failed to create scratch directory", "error", err)
		}
		defer os.RemoveAll(dir)

		dsn := filepath.Join(dir, "tmp.sqlite")
		tmpStorage, err := sqlite.New(ctx, dsn)
		if err != nil {
			log.Fatalw("failed to open scratch database", "error", err)
		}
		defer tmpStorage.Close()

		if _, _, err := tmpStorage.SchemaVersion(); err != nil {
			log.Fatalw("scratch database was not migrated", "error", err)
		}

		err = jet.GenerateDSN(dsn, outputDirectory)
		if err != nil {
			log.Fatalw("failed to generate code", "error", err)
		}

		log.Infow("successfully generated", "out", outputDirectory)
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}

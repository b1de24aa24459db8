package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kasuboski/moviedb/config"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/manager"
)

var (
	movieRating  float64
	movieYear    int
	moviePoster  string
	movieLookup  bool
	sortBy       string
	sortDesc     bool
	filterRating float64
	filterStart  int
	filterEnd    int
)

// movieCmd groups the one-shot collection commands. Results are printed as json.
var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "run a single collection command",
	Long:  `run a single collection command and print the result as json`,
}

// withManager opens the configured collection for the duration of fn
func withManager(cmd *cobra.Command, fn func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error)) {
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

	result, err := fn(ctx, log, mgr)
	if err != nil {
		closer.Close()
		log.Fatalw("command failed", "command", cmd.Name(), "error", err)
	}

	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		log.Errorw("failed to print result", "error", err)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var listMoviesCmd = &cobra.Command{
	Use:   "list",
	Short: "list movies in storage order or sorted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			if sortBy == "" {
				return m.ListMovies(ctx)
			}
			key, ok := manager.ParseSortKey(sortBy)
			if !ok {
				log.Fatalw("unknown sort key", "sort", sortBy)
			}
			return m.SortMovies(ctx, key, sortDesc)
		})
	},
}

var addMovieCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "add a movie, either manually or from the metadata lookup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			if movieLookup {
				return m.AddMovieFromLookup(ctx, args[0])
			}
			return m.AddMovie(ctx, manager.AddMovieRequest{
				Title:  args[0],
				Rating: movieRating,
				Year:   movieYear,
				Poster: moviePoster,
			})
		})
	},
}

var deleteMovieCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "delete a movie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			return map[string]string{"deleted": args[0]}, m.DeleteMovie(ctx, args[0])
		})
	},
}

var updateMovieCmd = &cobra.Command{
	Use:   "update <title>",
	Short: "change the rating of a movie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			return m.UpdateMovie(ctx, manager.UpdateMovieRequest{Title: args[0], Rating: movieRating})
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "summarize the ratings of the collection",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			return m.Stats(ctx)
		})
	},
}

var randomMovieCmd = &cobra.Command{
	Use:   "random",
	Short: "pick a movie for tonight",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			return m.RandomMovie(ctx)
		})
	},
}

var searchMoviesCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "find movies whose title contains query, ignoring case",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			return m.SearchMovies(ctx, query)
		})
	},
}

var filterMoviesCmd = &cobra.Command{
	Use:   "filter",
	Short: "list movies within a rating and year range, highest rated first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var req manager.FilterRequest
		if cmd.Flags().Changed("min-rating") {
			req.MinRating = &filterRating
		}
		if cmd.Flags().Changed("start-year") {
			req.StartYear = &filterStart
		}
		if cmd.Flags().Changed("end-year") {
			req.EndYear = &filterEnd
		}

		withManager(cmd, func(ctx context.Context, log *zap.SugaredLogger, m *manager.MovieManager) (any, error) {
			return m.FilterMovies(ctx, req)
		})
	},
}

func init() {
	rootCmd.AddCommand(movieCmd)
	movieCmd.AddCommand(listMoviesCmd, addMovieCmd, deleteMovieCmd, updateMovieCmd, statsCmd, randomMovieCmd, searchMoviesCmd, filterMoviesCmd)

	listMoviesCmd.Flags().StringVar(&sortBy, "sort", "", "sort by rating or year")
	listMoviesCmd.Flags().BoolVar(&sortDesc, "desc", false, "sort in descending order")

	addMovieCmd.Flags().Float64Var(&movieRating, "rating", 0, "rating between 0 and 10")
	addMovieCmd.Flags().IntVar(&movieYear, "year", 0, "year of release")
	addMovieCmd.Flags().StringVar(&moviePoster, "poster", "", "poster url")
	addMovieCmd.Flags().BoolVar(&movieLookup, "lookup", false, "fetch year, rating and poster from omdb")
	addMovieCmd.MarkFlagsMutuallyExclusive("lookup", "rating")
	addMovieCmd.MarkFlagsMutuallyExclusive("lookup", "year")

	updateMovieCmd.Flags().Float64Var(&movieRating, "rating", 0, "new rating between 0 and 10")
	updateMovieCmd.MarkFlagRequired("rating")

	filterMoviesCmd.Flags().Float64Var(&filterRating, "min-rating", 0, "minimum rating")
	filterMoviesCmd.Flags().IntVar(&filterStart, "start-year", 0, "first year of release")
	filterMoviesCmd.Flags().IntVar(&filterEnd, "end-year", 0, "last year of release")
}

package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/kasuboski/moviedb/pkg/collection"
)

var (
	colorAccent      = lipgloss.Color("#8BC34A")
	colorDestructive = lipgloss.Color("#e53935")
)

// styles only ever wrap single lines; lipgloss pads multi-line blocks and expands tabs
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		header:  r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(colorDestructive),
		success: r.NewStyle().Foreground(colorAccent),
	}
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func (s *Shell) printTitle() {
	s.println()
	s.println(s.styles.title.Render("********** " + s.title + " **********"))
}

func (s *Shell) printMenu() {
	s.println()
	s.println(s.styles.header.Render("Menu:"))
	for i, c := range s.commands {
		s.printf("%d. %s\n", i, c.label)
	}
	s.println()
}

func (s *Shell) printMovies(movies []collection.Movie) {
	if len(movies) == 0 {
		s.println("No movies found!")
		return
	}

	noun := "movies"
	if len(movies) == 1 {
		noun = "movie"
	}
	s.println()
	s.println(s.styles.header.Render("----- Total of " + humanize.Comma(int64(len(movies))) + " " + noun + " -----"))
	for _, m := range movies {
		s.printf("'%s'\n\tRating: %s | Year: %d\n", m.Title, formatRating(m.Rating), m.Year)
		if poster := m.PosterURL(); poster != "" {
			s.printf("\tPoster: %s\n", poster)
		}
	}
}

func (s *Shell) printRated(label string, rated []collection.Rated) {
	if len(rated) == 1 {
		s.printf("%-14s: '%s', Rating: %s\n", label+" movie", rated[0].Title, formatRating(rated[0].Rating))
		return
	}

	indent := strings.Repeat(" ", 16)
	for i, r := range rated {
		prefix := indent
		if i == 0 {
			prefix = fmt.Sprintf("%-14s: ", label+" movies")
		}
		s.printf("%s- '%s', Rating: %s\n", prefix, r.Title, formatRating(r.Rating))
	}
}

func (s *Shell) printStats(stats collection.Stats) {
	if stats.Total == 0 || stats.Average == nil || stats.Median == nil {
		s.println("No movies found!")
		return
	}

	s.println()
	s.println(s.styles.header.Render("----- Stats -----"))
	s.printf("Total movies  : %s\n", humanize.Comma(int64(stats.Total)))
	s.printf("Average rating: %s\n", formatRating(*stats.Average))
	s.printf("Median rating : %s\n", formatRating(*stats.Median))
	s.printRated("Best", stats.Best)
	s.printRated("Worst", stats.Worst)
}

func (s *Shell) printRandom(m collection.Movie) {
	s.println()
	s.println("Your movie for tonight:")
	s.printf("'%s'\nIt's rated %s and released %d.\n", m.Title, formatRating(m.Rating), m.Year)
}

func (s *Shell) printSuccess(msg string) {
	s.println()
	s.println(s.styles.success.Render(msg))
}

func (s *Shell) printWarning(msg string) {
	s.println()
	s.println(s.styles.warn.Render(msg))
}

func (s *Shell) printError(err error) {
	s.printWarning("Error: " + err.Error())
}

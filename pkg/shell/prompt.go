package shell

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kasuboski/moviedb/pkg/collection"
)

// readLine prints prompt and returns the next input line. io.EOF is
// returned once the input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Shell) askChoice() (int, error) {
	last := len(s.commands) - 1
	for {
		line, err := s.readLine("Enter choice (0-" + strconv.Itoa(last) + "): ")
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println(s.styles.warn.Render("Invalid input. Please enter a number!"))
			continue
		}
		if n < 0 || n > last {
			s.println(s.styles.warn.Render("The choice must be between 0 and " + strconv.Itoa(last) + ". Please try again."))
			continue
		}
		return n, nil
	}
}

func (s *Shell) askTitle() (string, error) {
	for {
		line, err := s.readLine("Enter movie name: ")
		if err != nil {
			return "", err
		}
		if title := strings.TrimSpace(line); title != "" {
			return title, nil
		}
		s.println(s.styles.warn.Render("The movie name must not be empty!"))
	}
}

func parseRating(line string) (float64, bool) {
	r, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return collection.RoundRating(r), true
}

func (s *Shell) askRating() (float64, error) {
	for {
		line, err := s.readLine("Enter new movie rating (0-10): ")
		if err != nil {
			return 0, err
		}

		r, ok := parseRating(line)
		if !ok {
			s.println(s.styles.warn.Render("Invalid input. Please enter a valid number!"))
			continue
		}
		if collection.ValidateRating(r) != nil {
			s.println(s.styles.warn.Render("Rating " + formatRating(r) + " is invalid. Please try again!"))
			continue
		}
		return r, nil
	}
}

func (s *Shell) askYear() (int, error) {
	for {
		line, err := s.readLine("Enter year of release: ")
		if err != nil {
			return 0, err
		}

		y, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println(s.styles.warn.Render("Invalid input. Please enter a valid 4-digit year!"))
			continue
		}
		if collection.ValidateYear(y) != nil {
			s.println(s.styles.warn.Render("Invalid year. Please enter a 4-digit year!"))
			continue
		}
		return y, nil
	}
}

// askMinRating returns nil when the user leaves the bound blank
func (s *Shell) askMinRating() (*float64, error) {
	for {
		line, err := s.readLine("Enter minimum rating (0-10) or leave blank for no minimum rating: ")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			return nil, nil
		}

		r, ok := parseRating(line)
		if !ok {
			s.println(s.styles.warn.Render("Invalid input. Please enter a valid number or leave blank!"))
			continue
		}
		if collection.ValidateRating(r) != nil {
			s.println(s.styles.warn.Render("Rating " + formatRating(r) + " is invalid. Please try again!"))
			continue
		}
		return &r, nil
	}
}

// askYearBound returns nil when the user leaves the bound blank
func (s *Shell) askYearBound(which string) (*int, error) {
	for {
		line, err := s.readLine("Enter " + which + " year or leave blank for no " + which + " year: ")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			return nil, nil
		}

		y, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println(s.styles.warn.Render("Invalid input. Please enter a valid 4-digit year or leave blank!"))
			continue
		}
		if collection.ValidateYear(y) != nil {
			s.println(s.styles.warn.Render("Year " + strconv.Itoa(y) + " is invalid. Please enter a 4-digit year!"))
			continue
		}
		return &y, nil
	}
}

// askDescending reads the sort order, "1" for ascending and "2" for descending
func (s *Shell) askDescending() (bool, error) {
	for {
		line, err := s.readLine("\nEnter '1' for ascending sequence.\nEnter '2' for descending sequence.\n")
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(line) {
		case "1":
			return false, nil
		case "2":
			return true, nil
		default:
			s.println(s.styles.warn.Render("Bad input! Please enter '1' or '2'."))
		}
	}
}

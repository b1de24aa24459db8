package collection

// Collection is an ordered mapping of title to movie. Iteration order is the
// order titles were first inserted; overwriting a title keeps its position.
type Collection struct {
	titles []string
	movies map[string]Movie
}

// New builds a collection from movies in the given order. A repeated title
// overwrites the earlier entry in place.
func New(movies ...Movie) Collection {
	c := Collection{
		titles: make([]string, 0, len(movies)),
		movies: make(map[string]Movie, len(movies)),
	}
	for _, m := range movies {
		c.Set(m)
	}
	return c
}

// Len returns the number of movies.
func (c Collection) Len() int {
	return len(c.titles)
}

// Get returns the movie stored under title.
func (c Collection) Get(title string) (Movie, bool) {
	m, ok := c.movies[title]
	return m, ok
}

// Has reports whether title is present.
func (c Collection) Has(title string) bool {
	_, ok := c.movies[title]
	return ok
}

// Titles returns the titles in iteration order.
func (c Collection) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// Movies returns the movies in iteration order.
func (c Collection) Movies() []Movie {
	out := make([]Movie, 0, len(c.titles))
	for _, t := range c.titles {
		out = append(out, c.movies[t])
	}
	return out
}

// Set inserts or overwrites the movie keyed by its title.
func (c *Collection) Set(m Movie) {
	if c.movies == nil {
		c.movies = make(map[string]Movie)
	}
	if _, ok := c.movies[m.Title]; !ok {
		c.titles = append(c.titles, m.Title)
	}
	c.movies[m.Title] = m
}

// Delete removes title and reports whether it was present.
func (c *Collection) Delete(title string) bool {
	if _, ok := c.movies[title]; !ok {
		return false
	}
	delete(c.movies, title)
	for i, t := range c.titles {
		if t == title {
			c.titles = append(c.titles[:i:i], c.titles[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns an independent copy.
func (c Collection) Clone() Collection {
	return New(c.Movies()...)
}

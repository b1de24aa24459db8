package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kasuboski/moviedb/pkg/collection"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/manager"
	"github.com/kasuboski/moviedb/pkg/omdb"
	"github.com/kasuboski/moviedb/pkg/pagination"
	"github.com/kasuboski/moviedb/pkg/storage"
)

const shutdownTimeout = time.Second * 3

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server exposes the movie collection over a JSON API
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.Service
}

// New creates a new movie server
func New(logger *zap.SugaredLogger, manager manager.Service) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeGenericResponse(w http.ResponseWriter, status int) error {
	return writeResponse(w, status, GenericResponse{})
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// statusFor maps domain errors to response codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, omdb.ErrNotFound),
		errors.Is(err, collection.ErrEmptyCollection):
		return http.StatusNotFound
	case errors.Is(err, collection.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, manager.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, omdb.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, manager.ErrNoFetcher):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	log := logger.FromCtx(r.Context())
	if status == http.StatusInternalServerError {
		log.Errorw("request failed", "error", err)
	} else {
		log.Debugw("request rejected", "status", status, "error", err)
	}

	if err := writeErrorResponse(w, status, err); err != nil {
		log.Errorw("failed to write response", "error", err)
	}
}

func (s Server) write(w http.ResponseWriter, r *http.Request, status int, response any) {
	if err := writeResponse(w, status, GenericResponse{Response: response}); err != nil {
		logger.FromCtx(r.Context()).Errorw("failed to write response", "error", err)
	}
}

// Handler builds the routes of the API
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/movies", s.ListMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies", s.CreateMovie()).Methods(http.MethodPost)
	v1.HandleFunc("/movies/random", s.RandomMovie()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/search", s.SearchMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/filter", s.FilterMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/{title}", s.UpdateMovie()).Methods(http.MethodPatch)
	v1.HandleFunc("/movies/{title}", s.DeleteMovie()).Methods(http.MethodDelete)

	v1.HandleFunc("/stats", s.Stats()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Second * 10,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errs
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

func paged(r *http.Request, movies []collection.Movie) (pagination.Page[collection.Movie], error) {
	params, err := pagination.FromQuery(r.URL.Query())
	if err != nil {
		return pagination.Page[collection.Movie]{}, fmt.Errorf("%w: %w", collection.ErrValidation, err)
	}
	return pagination.Apply(movies, params), nil
}

// ListMovies lists the collection, optionally sorted by rating or year
func (s Server) ListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qps := r.URL.Query()

		descending := false
		switch order := qps.Get("order"); order {
		case "", "asc":
		case "desc":
			descending = true
		default:
			s.writeError(w, r, fmt.Errorf("%w: unknown order %q", collection.ErrValidation, order))
			return
		}

		var (
			movies []collection.Movie
			err    error
		)
		if sortBy := qps.Get("sort"); sortBy != "" {
			key, ok := manager.ParseSortKey(sortBy)
			if !ok {
				s.writeError(w, r, fmt.Errorf("%w: unknown sort key %q", collection.ErrValidation, sortBy))
				return
			}
			movies, err = s.manager.SortMovies(r.Context(), key, descending)
		} else {
			movies, err = s.manager.ListMovies(r.Context())
		}
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		page, err := paged(r, movies)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.write(w, r, http.StatusOK, page)
	}
}

// CreateMovieRequest adds a movie manually or, with Lookup set, from fetched metadata
type CreateMovieRequest struct {
	manager.AddMovieRequest
	Lookup bool `json:"lookup"`
}

func (s Server) CreateMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: %w", collection.ErrValidation, err))
			return
		}

		var (
			movie collection.Movie
			err   error
		)
		if req.Lookup {
			movie, err = s.manager.AddMovieFromLookup(r.Context(), req.Title)
		} else {
			movie, err = s.manager.AddMovie(r.Context(), req.AddMovieRequest)
		}
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		s.write(w, r, http.StatusCreated, movie)
	}
}

// UpdateMovieRequest is the body of a rating change
type UpdateMovieRequest struct {
	Rating *float64 `json:"rating"`
}

func (s Server) UpdateMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := mux.Vars(r)["title"]

		var req UpdateMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: %w", collection.ErrValidation, err))
			return
		}
		if req.Rating == nil {
			s.writeError(w, r, fmt.Errorf("%w: rating is required", collection.ErrValidation))
			return
		}

		movie, err := s.manager.UpdateMovie(r.Context(), manager.UpdateMovieRequest{Title: title, Rating: *req.Rating})
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		s.write(w, r, http.StatusOK, movie)
	}
}

func (s Server) DeleteMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := mux.Vars(r)["title"]

		if err := s.manager.DeleteMovie(r.Context(), title); err != nil {
			s.writeError(w, r, err)
			return
		}

		if err := writeGenericResponse(w, http.StatusOK); err != nil {
			logger.FromCtx(r.Context()).Errorw("failed to write response", "error", err)
		}
	}
}

func (s Server) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.manager.Stats(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.write(w, r, http.StatusOK, stats)
	}
}

func (s Server) RandomMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movie, err := s.manager.RandomMovie(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.write(w, r, http.StatusOK, movie)
	}
}

func (s Server) SearchMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := s.manager.SearchMovies(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		page, err := paged(r, movies)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.write(w, r, http.StatusOK, page)
	}
}

// ParseFilterParams reads the optional filter bounds. Blank values leave a side unbounded.
func ParseFilterParams(r *http.Request) (manager.FilterRequest, error) {
	var req manager.FilterRequest
	qp := r.URL.Query()

	if v := qp.Get("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, fmt.Errorf("%w: invalid minRating %q", collection.ErrValidation, v)
		}
		req.MinRating = &rating
	}

	for name, dst := range map[string]**int{"startYear": &req.StartYear, "endYear": &req.EndYear} {
		v := qp.Get(name)
		if v == "" {
			continue
		}
		year, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("%w: invalid %s %q", collection.ErrValidation, name, v)
		}
		*dst = &year
	}

	return req, nil
}

func (s Server) FilterMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := ParseFilterParams(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		movies, err := s.manager.FilterMovies(r.Context(), req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		page, err := paged(r, movies)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.write(w, r, http.StatusOK, page)
	}
}

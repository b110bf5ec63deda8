package handler

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"filmpeek/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieService struct {
	listings []model.MovieListing
	detail   *model.MovieDetail
	err      error
	lastArgs []string
}

func (f *fakeMovieService) GetPopularMovies() ([]model.MovieListing, error) {
	return f.listings, f.err
}

func (f *fakeMovieService) GetTrendingMovies() ([]model.MovieListing, error) {
	return f.listings, f.err
}

func (f *fakeMovieService) GetTopRatedMovies() ([]model.MovieListing, error) {
	return f.listings, f.err
}

func (f *fakeMovieService) SearchMovies(name string, year string) ([]model.MovieListing, error) {
	f.lastArgs = []string{name, year}
	return f.listings, f.err
}

func (f *fakeMovieService) GetMovieDetail(movieId string) (*model.MovieDetail, error) {
	f.lastArgs = []string{movieId}
	return f.detail, f.err
}

func (f *fakeMovieService) GetSimilarMovies(movieId string) ([]model.MovieListing, error) {
	f.lastArgs = []string{movieId}
	return f.listings, f.err
}

func newMovieTestApp(svc *fakeMovieService) *fiber.App {
	app := fiber.New()
	h := NewMovieHandler(svc)
	app.Get("/api/movie/popular-movies", h.GetPopularMovies)
	app.Get("/api/movie/trending", h.GetTrendingMovies)
	app.Get("/api/movie/top-rated", h.GetTopRatedMovies)
	app.Get("/api/movie/search", h.SearchMovies)
	app.Get("/api/movie/:id/similar", h.GetSimilarMovies)
	app.Get("/api/movie/:id", h.GetMovieDetail)
	return app
}

//------------------------------------------
//------------------------------------------

func TestGetPopularMoviesHandler(t *testing.T) {
	svc := &fakeMovieService{
		listings: []model.MovieListing{
			{Id: 1, Title: "Heat", VoteAverage: 8.3},
			{Id: 2, Title: "Ronin", VoteAverage: 7.3},
		},
	}
	app := newMovieTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/popular-movies", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	// listings come back as a bare array, no envelope
	var movies []model.MovieListing
	require.NoError(t, json.NewDecoder(res.Body).Decode(&movies))
	require.Len(t, movies, 2)
	assert.Equal(t, "Heat", movies[0].Title)
}

func TestGetPopularMoviesHandlerUpstreamError(t *testing.T) {
	svc := &fakeMovieService{err: errors.New("upstream down")}
	app := newMovieTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/popular-movies", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "An error occured", body["message"])
}

func TestSearchMoviesHandler(t *testing.T) {
	svc := &fakeMovieService{listings: []model.MovieListing{{Id: 9, Title: "Heat"}}}
	app := newMovieTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/search?name=heat&year=1995", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"heat", "1995"}, svc.lastArgs)
}

func TestSearchMoviesHandlerMissingParams(t *testing.T) {
	app := newMovieTestApp(&fakeMovieService{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/search", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Please provide a movie name or year", body["message"])
}

func TestSearchMoviesHandlerYearOnly(t *testing.T) {
	svc := &fakeMovieService{listings: []model.MovieListing{}}
	app := newMovieTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/search?year=1995", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"", "1995"}, svc.lastArgs)
}

func TestGetMovieDetailHandler(t *testing.T) {
	svc := &fakeMovieService{
		detail: &model.MovieDetail{Id: 949, Title: "Heat", Tagline: "A Los Angeles crime saga"},
	}
	app := newMovieTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/949", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"949"}, svc.lastArgs)

	var detail model.MovieDetail
	require.NoError(t, json.NewDecoder(res.Body).Decode(&detail))
	assert.Equal(t, "Heat", detail.Title)
	assert.Equal(t, "A Los Angeles crime saga", detail.Tagline)
}

func TestGetSimilarMoviesHandler(t *testing.T) {
	svc := &fakeMovieService{listings: []model.MovieListing{{Id: 2}}}
	app := newMovieTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/movie/949/similar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"949"}, svc.lastArgs)
}

package handler

import (
	"filmpeek/internal/service"
	errorHandler "filmpeek/pkg/error"
	"filmpeek/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetPopularMovies(c *fiber.Ctx) error
	GetTrendingMovies(c *fiber.Ctx) error
	GetTopRatedMovies(c *fiber.Ctx) error
	SearchMovies(c *fiber.Ctx) error
	GetMovieDetail(c *fiber.Ctx) error
	GetSimilarMovies(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetPopularMovies godoc
//
//	@Summary		Popular Movies
//	@Description	top 10 popular movies from the catalog.
//	@Tags			Movies
//	@Success		200	{array}		model.MovieListing
//	@Failure		400	{object}	response.ResponseMessageModel
//	@Router			/api/movie/popular-movies [get]
func (h *MovieHandler) GetPopularMovies(c *fiber.Ctx) error {
	movies, err := h.movieService.GetPopularMovies()
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(movies)
}

// GetTrendingMovies godoc
//
//	@Summary		Trending Movies
//	@Description	movies trending on the catalog today.
//	@Tags			Movies
//	@Success		200	{array}		model.MovieListing
//	@Failure		400	{object}	response.ResponseMessageModel
//	@Router			/api/movie/trending [get]
func (h *MovieHandler) GetTrendingMovies(c *fiber.Ctx) error {
	movies, err := h.movieService.GetTrendingMovies()
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(movies)
}

// GetTopRatedMovies godoc
//
//	@Summary		Top Rated Movies
//	@Description	top rated movies from the catalog.
//	@Tags			Movies
//	@Success		200	{array}		model.MovieListing
//	@Failure		400	{object}	response.ResponseMessageModel
//	@Router			/api/movie/top-rated [get]
func (h *MovieHandler) GetTopRatedMovies(c *fiber.Ctx) error {
	movies, err := h.movieService.GetTopRatedMovies()
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(movies)
}

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	search the catalog by movie name and/or release year.
//	@Tags			Movies
//	@Param			name	query		string	false	"movie name"
//	@Param			year	query		string	false	"release year"
//	@Success		200	{array}		model.MovieListing
//	@Failure		400	{object}	response.ResponseMessageModel
//	@Router			/api/movie/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	name := c.Query("name", "")
	year := c.Query("year", "")
	if name == "" && year == "" {
		return response.ResponseError(c, response.ProvideSearchParams, fiber.StatusBadRequest)
	}

	movies, err := h.movieService.SearchMovies(name, year)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(movies)
}

// GetMovieDetail godoc
//
//	@Summary		Movie Detail
//	@Description	fetch a movie's details by its catalog id.
//	@Tags			Movies
//	@Param			id	path		string	true	"catalog movie id"
//	@Success		200	{object}	model.MovieDetail
//	@Failure		400	{object}	response.ResponseMessageModel
//	@Router			/api/movie/:id [get]
func (h *MovieHandler) GetMovieDetail(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}

	movie, err := h.movieService.GetMovieDetail(movieId)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(movie)
}

// GetSimilarMovies godoc
//
//	@Summary		Similar Movies
//	@Description	movies similar to the given catalog id.
//	@Tags			Movies
//	@Param			id	path		string	true	"catalog movie id"
//	@Success		200	{array}		model.MovieListing
//	@Failure		400	{object}	response.ResponseMessageModel
//	@Router			/api/movie/:id/similar [get]
func (h *MovieHandler) GetSimilarMovies(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}

	movies, err := h.movieService.GetSimilarMovies(movieId)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.CatalogError, fiber.StatusBadRequest)
	}
	return c.Status(fiber.StatusOK).JSON(movies)
}

package service

import (
	"encoding/json"
	"fmt"
	"net/url"

	"filmpeek/internal/repository"
	"filmpeek/model"
)

type IMovieService interface {
	GetPopularMovies() ([]model.MovieListing, error)
	GetTrendingMovies() ([]model.MovieListing, error)
	GetTopRatedMovies() ([]model.MovieListing, error)
	SearchMovies(name string, year string) ([]model.MovieListing, error)
	GetMovieDetail(movieId string) (*model.MovieDetail, error)
	GetSimilarMovies(movieId string) ([]model.MovieListing, error)
}

type MovieService struct {
	catalogRepo repository.ICatalogRepository
	cacheSvc    ICacheService
}

func NewMovieService(catalogRepo repository.ICatalogRepository, cacheSvc ICacheService) *MovieService {
	return &MovieService{
		catalogRepo: catalogRepo,
		cacheSvc:    cacheSvc,
	}
}

//------------------------------------------
//------------------------------------------

// SimplifyMovieData trims raw catalog listings down to the fields the
// frontend renders.
func SimplifyMovieData(movies []model.RawMovie) []model.MovieListing {
	result := make([]model.MovieListing, 0, len(movies))
	for _, m := range movies {
		title := m.Title
		if title == "" {
			title = m.OriginalTitle
		}
		result = append(result, model.MovieListing{
			Id:          m.Id,
			Title:       title,
			Overview:    m.Overview,
			PosterPath:  m.PosterPath,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
			Popularity:  m.Popularity,
			GenreIds:    m.GenreIds,
			Language:    m.OriginalLanguage,
			Adult:       m.Adult,
		})
	}
	return result
}

// SimplifyMovieDetails trims a raw catalog record down to the detail shape.
func SimplifyMovieDetails(movie model.RawMovie) model.MovieDetail {
	title := movie.Title
	if title == "" {
		title = movie.OriginalTitle
	}
	return model.MovieDetail{
		Id:           movie.Id,
		Title:        title,
		Tagline:      movie.Tagline,
		ReleaseDate:  movie.ReleaseDate,
		Overview:     movie.Overview,
		PosterPath:   movie.PosterPath,
		BackdropPath: movie.BackdropPath,
		VoteAverage:  movie.VoteAverage,
		Genres:       movie.Genres,
	}
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) GetPopularMovies() ([]model.MovieListing, error) {
	listings, err := s.fetchListing("movie/popular")
	if err != nil {
		return nil, err
	}
	if len(listings) > 10 {
		listings = listings[:10]
	}
	return listings, nil
}

func (s *MovieService) GetTrendingMovies() ([]model.MovieListing, error) {
	return s.fetchListing("trending/movie/day")
}

func (s *MovieService) GetTopRatedMovies() ([]model.MovieListing, error) {
	return s.fetchListing("movie/top_rated")
}

func (s *MovieService) SearchMovies(name string, year string) ([]model.MovieListing, error) {
	q := url.Values{}
	q.Set("query", name)
	if year != "" {
		q.Set("year", year)
	}
	return s.fetchListing("search/movie?" + q.Encode())
}

func (s *MovieService) GetMovieDetail(movieId string) (*model.MovieDetail, error) {
	body, err := s.fetchRaw(fmt.Sprintf("movie/%s?language=en-US", movieId))
	if err != nil {
		return nil, err
	}

	var raw model.RawMovie
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	detail := SimplifyMovieDetails(raw)
	return &detail, nil
}

func (s *MovieService) GetSimilarMovies(movieId string) ([]model.MovieListing, error) {
	return s.fetchListing(fmt.Sprintf("movie/%s/similar", movieId))
}

//------------------------------------------
//------------------------------------------

func (s *MovieService) fetchListing(path string) ([]model.MovieListing, error) {
	body, err := s.fetchRaw(path)
	if err != nil {
		return nil, err
	}

	var raw model.RawMovieList
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return SimplifyMovieData(raw.Results), nil
}

// fetchRaw serves from the cache when it can, cache failures never
// block the upstream call.
func (s *MovieService) fetchRaw(path string) ([]byte, error) {
	cached, _ := s.cacheSvc.GetMovieDataCache(path)
	if cached != nil {
		return cached, nil
	}

	body, err := s.catalogRepo.Fetch(path)
	if err != nil {
		return nil, err
	}

	_ = s.cacheSvc.SetMovieDataCache(path, body)
	return body, nil
}

package model

// Raw shapes as tmdb returns them. Only the fields we forward are decoded.

type RawMovie struct {
	Id               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	GenreIds         []int64 `json:"genre_ids"`
	Genres           []Genre `json:"genres"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
}

type Genre struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type RawMovieList struct {
	Page         int        `json:"page"`
	Results      []RawMovie `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// MovieListing is the reduced listing shape sent to the frontend.
type MovieListing struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
	GenreIds    []int64 `json:"genre_ids"`
	Language    string  `json:"original_language"`
	Adult       bool    `json:"adult"`
}

// MovieDetail is the reduced detail shape sent to the frontend.
type MovieDetail struct {
	Id           int64   `json:"id"`
	Title        string  `json:"title"`
	Tagline      string  `json:"tagline"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []Genre `json:"genres"`
}

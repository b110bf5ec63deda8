package model

type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FavoriteMovieReq struct {
	MovieId *int64 `json:"movieId"`
}

type CreateWatchlistReq struct {
	WatchlistName string `json:"watchlistName"`
}

type AddWatchlistMovieReq struct {
	MovieId     *int64 `json:"movieId"`
	WatchlistId string `json:"watchlistId"`
}

type RemoveWatchlistMovieReq struct {
	MovieId *int64 `json:"movieId"`
	Id      string `json:"id"`
}

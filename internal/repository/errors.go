package repository

import "errors"

// Domain failures of the user store. Handlers map these onto the
// http status/message table, everything else is a persistence error.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAlreadyFavorite        = errors.New("movie already in favorites")
	ErrNotFavorite            = errors.New("movie not in favorites")
	ErrDuplicateWatchlistName = errors.New("watchlist name already exists")
	ErrWatchlistNotFound      = errors.New("watchlist not found")
	ErrAlreadyInWatchlist     = errors.New("movie already in watchlist")
	ErrMovieNotInWatchlist    = errors.New("movie not in watchlist")
)

package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	PageNotFound = "Page not found!"
	//----------------------
	AuthenticationRequired = "Authentication required."
	InvalidToken           = "Invalid token."
	//----------------------
	EmailAlreadyExist  = "User with this email already existed"
	UserCreated        = "User created successfully"
	UserCreateFailed   = "Failed to create user"
	LoginSuccessful    = "Login successful"
	LoginFailed        = "Login failed"
	InvalidCredentials = "Invalid Credentials"
	WrongPassword      = "Wrong Password"
	UserNotFound       = "Cannot find user"
	//----------------------
	MovieAddedToFavorite     = "Movie added to favorite"
	MovieAlreadyInFavorites  = "Movie already in your favorites"
	MovieRemovedFromFavorite = "Movie removed from favorite"
	MovieNotInFavorites      = "Movie not in your favorites"
	FavoritesFetched         = "Favorite movie fetched"
	//----------------------
	WatchlistCreated          = "Watchlist created"
	WatchlistNameAlreadyExist = "Watchlist with this name already exists"
	WatchlistNotFound         = "Watchlist not found"
	WatchlistDeleted          = "Watchlist deleted"
	WatchlistFetched          = "Watchlist fetched"
	WatchlistsFetched         = "Watchlists fetched"
	MovieAddedToWatchlist     = "Movie added to watchlist"
	MovieAlreadyInWatchlist   = "Movie already in watchlist"
	MovieRemovedFromWatchlist = "Movie removed from watchlist"
	MovieNotInWatchlist       = "Movie not in watchlist"
	//----------------------
	CatalogError = "An error occured"
	//----------------------
	ProvideNameEmailPassword = "Please provide name, email and password"
	ProvideEmailPassword     = "Please provide email and password"
	ProvideMovieId           = "Please provide a movieId"
	ProvideWatchlistName     = "Please provide a watchlist name"
	ProvideWatchlistId       = "Please provide a watchlistId"
	ProvideSearchParams      = "Please provide a movie name or year"
	InvalidEmail             = "Please provide a valid email"
	//----------------------
)

package handler

import (
	"errors"

	"filmpeek/internal/repository"
	"filmpeek/internal/service"
	"filmpeek/model"
	errorHandler "filmpeek/pkg/error"
	"filmpeek/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Signup(c *fiber.Ctx) error
	Signin(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	AddFavorite(c *fiber.Ctx) error
	RemoveFavorite(c *fiber.Ctx) error
	GetFavorites(c *fiber.Ctx) error
	CreateWatchlist(c *fiber.Ctx) error
	AddMovieToWatchlist(c *fiber.Ctx) error
	RemoveMovieFromWatchlist(c *fiber.Ctx) error
	DeleteWatchlist(c *fiber.Ctx) error
	GetWatchlist(c *fiber.Ctx) error
	GetWatchlists(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	register a new user account.
//	@Tags			Auth
//	@Param			body	body		model.SignupReq	true	"name, email and password"
//	@Success		201		{object}	model.User
//	@Failure		400,500	{object}	response.ResponseMessageModel
//	@Router			/api/auth/signup [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var body model.SignupReq
	if err := c.BodyParser(&body); err != nil {
		return response.ResponseError(c, response.ProvideNameEmailPassword, fiber.StatusBadRequest)
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return response.ResponseError(c, response.ProvideNameEmailPassword, fiber.StatusBadRequest)
	}

	user, err := h.userService.Signup(body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrInvalidEmail) {
			return response.ResponseError(c, response.InvalidEmail, fiber.StatusBadRequest)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.UserCreateFailed, fiber.StatusInternalServerError)
	}

	return response.ResponseWithData(c, fiber.StatusCreated, response.UserCreated, "user", user)
}

// Signin godoc
//
//	@Summary		Signin
//	@Description	login with email and password, returns a bearer token.
//	@Tags			Auth
//	@Param			body	body		model.SigninReq	true	"email and password"
//	@Success		200		{object}	response.ResponseMessageModel
//	@Failure		400,500	{object}	response.ResponseMessageModel
//	@Router			/api/auth/signin [post]
func (h *UserHandler) Signin(c *fiber.Ctx) error {
	var body model.SigninReq
	if err := c.BodyParser(&body); err != nil {
		return response.ResponseError(c, response.ProvideEmailPassword, fiber.StatusBadRequest)
	}
	if body.Email == "" || body.Password == "" {
		return response.ResponseError(c, response.ProvideEmailPassword, fiber.StatusBadRequest)
	}

	token, err := h.userService.Signin(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.ResponseError(c, response.InvalidCredentials, fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrWrongPassword) {
			return response.ResponseError(c, response.WrongPassword, fiber.StatusBadRequest)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.LoginFailed, fiber.StatusInternalServerError)
	}

	return response.ResponseWithData(c, fiber.StatusOK, response.LoginSuccessful, "token", token)
}

// GetProfile godoc
//
//	@Summary		User Profile
//	@Description	get the signed in user's profile.
//	@Tags			Auth
//	@Success		200			{object}	model.UserProfileRes
//	@Failure		401,403,404	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/auth/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	profile, err := h.userService.GetProfile(userId)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

//------------------------------------------
//------------------------------------------

// AddFavorite godoc
//
//	@Summary		Add Favorite
//	@Description	add a movie to the user's favorites.
//	@Tags			Favorites
//	@Param			body	body		model.FavoriteMovieReq	true	"movieId"
//	@Success		201		{object}	response.ResponseMessageModel
//	@Failure		400,401,403	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/favorites/add [post]
func (h *UserHandler) AddFavorite(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	var body model.FavoriteMovieReq
	if err := c.BodyParser(&body); err != nil || body.MovieId == nil {
		return response.ResponseError(c, response.ProvideMovieId, fiber.StatusBadRequest)
	}

	err := h.userService.AddFavorite(userId, *body.MovieId)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorite) {
			return response.ResponseError(c, response.MovieAlreadyInFavorites, fiber.StatusBadRequest)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseCreated(c, response.MovieAddedToFavorite)
}

// RemoveFavorite godoc
//
//	@Summary		Remove Favorite
//	@Description	remove a movie from the user's favorites.
//	@Tags			Favorites
//	@Param			body	body		model.FavoriteMovieReq	true	"movieId"
//	@Success		201		{object}	response.ResponseMessageModel
//	@Failure		400,401,403	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/favorites/remove [post]
func (h *UserHandler) RemoveFavorite(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	var body model.FavoriteMovieReq
	if err := c.BodyParser(&body); err != nil || body.MovieId == nil {
		return response.ResponseError(c, response.ProvideMovieId, fiber.StatusBadRequest)
	}

	err := h.userService.RemoveFavorite(userId, *body.MovieId)
	if err != nil {
		if errors.Is(err, repository.ErrNotFavorite) {
			return response.ResponseError(c, response.MovieNotInFavorites, fiber.StatusBadRequest)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseCreated(c, response.MovieRemovedFromFavorite)
}

// GetFavorites godoc
//
//	@Summary		Fetch Favorites
//	@Description	list the user's favorite movie ids.
//	@Tags			Favorites
//	@Success		200			{object}	response.ResponseMessageModel
//	@Failure		401,403,404	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/favorites [get]
func (h *UserHandler) GetFavorites(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	favorites, err := h.userService.GetFavorites(userId)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseWithData(c, fiber.StatusOK, response.FavoritesFetched, "data", favorites)
}

//------------------------------------------
//------------------------------------------

// CreateWatchlist godoc
//
//	@Summary		Create Watchlist
//	@Description	create a new named watchlist for the user.
//	@Tags			Watchlists
//	@Param			body	body		model.CreateWatchlistReq	true	"watchlistName"
//	@Success		201		{object}	model.Watchlist
//	@Failure		400,401,403	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/watchlist/create-watchlist [post]
func (h *UserHandler) CreateWatchlist(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	var body model.CreateWatchlistReq
	if err := c.BodyParser(&body); err != nil || body.WatchlistName == "" {
		return response.ResponseError(c, response.ProvideWatchlistName, fiber.StatusBadRequest)
	}

	watchlist, err := h.userService.CreateWatchlist(userId, body.WatchlistName)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateWatchlistName) {
			return response.ResponseError(c, response.WatchlistNameAlreadyExist, fiber.StatusBadRequest)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseWithData(c, fiber.StatusCreated, response.WatchlistCreated, "watchlist", watchlist)
}

// AddMovieToWatchlist godoc
//
//	@Summary		Add Movie To Watchlist
//	@Description	add a movie to one of the user's watchlists.
//	@Tags			Watchlists
//	@Param			body	body		model.AddWatchlistMovieReq	true	"movieId and watchlistId"
//	@Success		200		{object}	response.ResponseMessageModel
//	@Failure		400,401,403,404	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/watchlist/add-movie [patch]
func (h *UserHandler) AddMovieToWatchlist(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	var body model.AddWatchlistMovieReq
	if err := c.BodyParser(&body); err != nil || body.MovieId == nil {
		return response.ResponseError(c, response.ProvideMovieId, fiber.StatusBadRequest)
	}
	if body.WatchlistId == "" {
		return response.ResponseError(c, response.ProvideWatchlistId, fiber.StatusBadRequest)
	}

	err := h.userService.AddMovieToWatchlist(userId, body.WatchlistId, *body.MovieId)
	if err != nil {
		return watchlistErrorResponse(c, err, response.MovieAlreadyInWatchlist)
	}

	return response.ResponseOK(c, response.MovieAddedToWatchlist)
}

// RemoveMovieFromWatchlist godoc
//
//	@Summary		Remove Movie From Watchlist
//	@Description	remove a movie from one of the user's watchlists.
//	@Tags			Watchlists
//	@Param			body	body		model.RemoveWatchlistMovieReq	true	"movieId and watchlist id"
//	@Success		200		{object}	response.ResponseMessageModel
//	@Failure		400,401,403,404	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/watchlist/delete-movie [post]
func (h *UserHandler) RemoveMovieFromWatchlist(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	var body model.RemoveWatchlistMovieReq
	if err := c.BodyParser(&body); err != nil || body.MovieId == nil {
		return response.ResponseError(c, response.ProvideMovieId, fiber.StatusBadRequest)
	}
	if body.Id == "" {
		return response.ResponseError(c, response.ProvideWatchlistId, fiber.StatusBadRequest)
	}

	err := h.userService.RemoveMovieFromWatchlist(userId, body.Id, *body.MovieId)
	if err != nil {
		return watchlistErrorResponse(c, err, response.MovieNotInWatchlist)
	}

	return response.ResponseOK(c, response.MovieRemovedFromWatchlist)
}

// DeleteWatchlist godoc
//
//	@Summary		Delete Watchlist
//	@Description	delete one of the user's watchlists.
//	@Tags			Watchlists
//	@Param			id	path		string	true	"watchlist id"
//	@Success		200	{object}	response.ResponseMessageModel
//	@Failure		401,403,404	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/watchlist/:id [delete]
func (h *UserHandler) DeleteWatchlist(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	watchlistId := c.Params("id", "")
	if watchlistId == "" || watchlistId == ":id" {
		return response.ResponseError(c, response.ProvideWatchlistId, fiber.StatusBadRequest)
	}

	err := h.userService.DeleteWatchlist(userId, watchlistId)
	if err != nil {
		if errors.Is(err, repository.ErrWatchlistNotFound) {
			return response.ResponseError(c, response.WatchlistNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, response.WatchlistDeleted)
}

// GetWatchlist godoc
//
//	@Summary		Fetch Watchlist
//	@Description	fetch one of the user's watchlists by id.
//	@Tags			Watchlists
//	@Param			id	path		string	true	"watchlist id"
//	@Success		200	{object}	model.Watchlist
//	@Failure		400,401,403	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/watchlist/:id [get]
func (h *UserHandler) GetWatchlist(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	watchlistId := c.Params("id", "")
	if watchlistId == "" || watchlistId == ":id" {
		return response.ResponseError(c, response.ProvideWatchlistId, fiber.StatusBadRequest)
	}

	watchlist, err := h.userService.GetWatchlist(userId, watchlistId)
	if err != nil {
		if errors.Is(err, repository.ErrWatchlistNotFound) {
			return response.ResponseError(c, response.WatchlistNotFound, fiber.StatusBadRequest)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseWithData(c, fiber.StatusOK, response.WatchlistFetched, "watchlist", watchlist)
}

// GetWatchlists godoc
//
//	@Summary		Fetch Watchlists
//	@Description	list all of the user's watchlists.
//	@Tags			Watchlists
//	@Success		200			{object}	response.ResponseMessageModel
//	@Failure		401,403,404	{object}	response.ResponseMessageModel
//	@Security		BearerAuth
//	@Router			/api/movie/user/watchlists [get]
func (h *UserHandler) GetWatchlists(c *fiber.Ctx) error {
	userId := c.Locals("userId").(string)

	watchlists, err := h.userService.GetWatchlists(userId)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseWithData(c, fiber.StatusOK, response.WatchlistsFetched, "watchlists", watchlists)
}

//------------------------------------------
//------------------------------------------

// watchlistErrorResponse maps watchlist mutation failures, the membership
// condition message differs per route.
func watchlistErrorResponse(c *fiber.Ctx, err error, conditionMessage string) error {
	if errors.Is(err, repository.ErrAlreadyInWatchlist) || errors.Is(err, repository.ErrMovieNotInWatchlist) {
		return response.ResponseError(c, conditionMessage, fiber.StatusBadRequest)
	}
	if errors.Is(err, repository.ErrWatchlistNotFound) {
		return response.ResponseError(c, response.WatchlistNotFound, fiber.StatusNotFound)
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
	}
	errorHandler.SaveError(err.Error(), err)
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}

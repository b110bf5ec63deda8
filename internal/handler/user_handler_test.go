package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"filmpeek/api/middleware"
	"filmpeek/configs"
	"filmpeek/internal/repository"
	"filmpeek/internal/service"
	"filmpeek/model"
	"filmpeek/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	service.IUserService
	signupFn            func(name, email, password string) (*model.User, error)
	signinFn            func(email, password string) (string, error)
	addFavoriteFn       func(userId string, movieId int64) error
	getFavoritesFn      func(userId string) ([]int64, error)
	createWatchlistFn   func(userId, name string) (*model.Watchlist, error)
	addWatchlistMovieFn func(userId, watchlistId string, movieId int64) error
	deleteWatchlistFn   func(userId, watchlistId string) error
}

func (f *fakeUserService) Signup(name, email, password string) (*model.User, error) {
	return f.signupFn(name, email, password)
}

func (f *fakeUserService) Signin(email, password string) (string, error) {
	return f.signinFn(email, password)
}

func (f *fakeUserService) AddFavorite(userId string, movieId int64) error {
	return f.addFavoriteFn(userId, movieId)
}

func (f *fakeUserService) GetFavorites(userId string) ([]int64, error) {
	return f.getFavoritesFn(userId)
}

func (f *fakeUserService) CreateWatchlist(userId string, name string) (*model.Watchlist, error) {
	return f.createWatchlistFn(userId, name)
}

func (f *fakeUserService) AddMovieToWatchlist(userId string, watchlistId string, movieId int64) error {
	return f.addWatchlistMovieFn(userId, watchlistId, movieId)
}

func (f *fakeUserService) DeleteWatchlist(userId string, watchlistId string) error {
	return f.deleteWatchlistFn(userId, watchlistId)
}

func newTestApp(svc service.IUserService) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(svc)
	app.Post("/api/auth/signup", h.Signup)
	app.Post("/api/auth/signin", h.Signin)
	app.Post("/api/movie/user/favorites/add", middleware.AuthMiddleware, h.AddFavorite)
	app.Get("/api/movie/user/favorites", middleware.AuthMiddleware, h.GetFavorites)
	app.Post("/api/movie/user/watchlist/create-watchlist", middleware.AuthMiddleware, h.CreateWatchlist)
	app.Patch("/api/movie/user/watchlist/add-movie", middleware.AuthMiddleware, h.AddMovieToWatchlist)
	app.Delete("/api/movie/user/watchlist/:id", middleware.AuthMiddleware, h.DeleteWatchlist)
	return app
}

func bodyMessage(t *testing.T, res io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res).Decode(&body))
	return body
}

func authToken(t *testing.T) string {
	t.Helper()
	configs.SetConfigs(configs.ConfigStruct{AccessTokenSecret: "test-secret"})
	token, err := util.CreateJwtToken("66b1f0c2a4b5c6d7e8f90123")
	require.NoError(t, err)
	return token
}

//------------------------------------------
//------------------------------------------

func TestSignupHandler(t *testing.T) {
	svc := &fakeUserService{
		signupFn: func(name, email, password string) (*model.User, error) {
			return &model.User{Name: name, Email: email, Password: "hashed"}, nil
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/signup",
		strings.NewReader(`{"name":"A","email":"a@x.com","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	body := bodyMessage(t, res.Body)
	assert.Equal(t, "User created successfully", body["message"])

	// password never leaves the server
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "A", user["name"])
	assert.NotContains(t, user, "password")
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	svc := &fakeUserService{
		signupFn: func(name, email, password string) (*model.User, error) {
			return nil, service.ErrEmailTaken
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/signup",
		strings.NewReader(`{"name":"A","email":"a@x.com","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "User with this email already existed", bodyMessage(t, res.Body)["message"])
}

func TestSignupHandlerMissingFields(t *testing.T) {
	svc := &fakeUserService{}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/signup",
		strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Please provide name, email and password", bodyMessage(t, res.Body)["message"])
}

func TestSigninHandler(t *testing.T) {
	svc := &fakeUserService{
		signinFn: func(email, password string) (string, error) {
			return "signed-token", nil
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/signin",
		strings.NewReader(`{"email":"a@x.com","password":"p"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := bodyMessage(t, res.Body)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "signed-token", body["token"])
}

func TestSigninHandlerWrongPassword(t *testing.T) {
	svc := &fakeUserService{
		signinFn: func(email, password string) (string, error) {
			return "", service.ErrWrongPassword
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/signin",
		strings.NewReader(`{"email":"a@x.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Wrong Password", bodyMessage(t, res.Body)["message"])
}

//------------------------------------------
//------------------------------------------

func TestProtectedRouteMissingToken(t *testing.T) {
	app := newTestApp(&fakeUserService{})

	req := httptest.NewRequest("POST", "/api/movie/user/favorites/add",
		strings.NewReader(`{"movieId":42}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Authentication required.", bodyMessage(t, res.Body)["message"])
}

func TestProtectedRouteInvalidToken(t *testing.T) {
	configs.SetConfigs(configs.ConfigStruct{AccessTokenSecret: "test-secret"})
	app := newTestApp(&fakeUserService{})

	req := httptest.NewRequest("POST", "/api/movie/user/favorites/add",
		strings.NewReader(`{"movieId":42}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer invalid-token")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	assert.Equal(t, "Invalid token.", bodyMessage(t, res.Body)["message"])
}

func TestAddFavoriteHandler(t *testing.T) {
	var gotUserId string
	var gotMovieId int64
	svc := &fakeUserService{
		addFavoriteFn: func(userId string, movieId int64) error {
			gotUserId = userId
			gotMovieId = movieId
			return nil
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("POST", "/api/movie/user/favorites/add",
		strings.NewReader(`{"movieId":42}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	assert.Equal(t, "Movie added to favorite", bodyMessage(t, res.Body)["message"])
	assert.Equal(t, "66b1f0c2a4b5c6d7e8f90123", gotUserId)
	assert.Equal(t, int64(42), gotMovieId)
}

func TestAddFavoriteHandlerDuplicate(t *testing.T) {
	svc := &fakeUserService{
		addFavoriteFn: func(userId string, movieId int64) error {
			return repository.ErrAlreadyFavorite
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("POST", "/api/movie/user/favorites/add",
		strings.NewReader(`{"movieId":42}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Movie already in your favorites", bodyMessage(t, res.Body)["message"])
}

func TestAddFavoriteHandlerMissingMovieId(t *testing.T) {
	app := newTestApp(&fakeUserService{})
	token := authToken(t)

	req := httptest.NewRequest("POST", "/api/movie/user/favorites/add",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Please provide a movieId", bodyMessage(t, res.Body)["message"])
}

func TestGetFavoritesHandler(t *testing.T) {
	svc := &fakeUserService{
		getFavoritesFn: func(userId string) ([]int64, error) {
			return []int64{1, 2, 3}, nil
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("GET", "/api/movie/user/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := bodyMessage(t, res.Body)
	assert.Equal(t, "Favorite movie fetched", body["message"])
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, body["data"])
}

//------------------------------------------
//------------------------------------------

func TestCreateWatchlistHandlerDuplicateName(t *testing.T) {
	svc := &fakeUserService{
		createWatchlistFn: func(userId, name string) (*model.Watchlist, error) {
			return nil, repository.ErrDuplicateWatchlistName
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("POST", "/api/movie/user/watchlist/create-watchlist",
		strings.NewReader(`{"watchlistName":"weekend"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Watchlist with this name already exists", bodyMessage(t, res.Body)["message"])
}

func TestAddMovieToWatchlistHandlerNotFound(t *testing.T) {
	svc := &fakeUserService{
		addWatchlistMovieFn: func(userId, watchlistId string, movieId int64) error {
			return repository.ErrWatchlistNotFound
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("PATCH", "/api/movie/user/watchlist/add-movie",
		strings.NewReader(`{"movieId":42,"watchlistId":"some-id"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Watchlist not found", bodyMessage(t, res.Body)["message"])
}

func TestDeleteWatchlistHandler(t *testing.T) {
	var gotWatchlistId string
	svc := &fakeUserService{
		deleteWatchlistFn: func(userId, watchlistId string) error {
			gotWatchlistId = watchlistId
			return nil
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("DELETE", "/api/movie/user/watchlist/some-id", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "Watchlist deleted", bodyMessage(t, res.Body)["message"])
	assert.Equal(t, "some-id", gotWatchlistId)
}

func TestDeleteWatchlistHandlerNotFound(t *testing.T) {
	svc := &fakeUserService{
		deleteWatchlistFn: func(userId, watchlistId string) error {
			return repository.ErrWatchlistNotFound
		},
	}
	app := newTestApp(svc)
	token := authToken(t)

	req := httptest.NewRequest("DELETE", "/api/movie/user/watchlist/no-such-id", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Watchlist not found", bodyMessage(t, res.Body)["message"])
}

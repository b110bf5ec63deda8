package api

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"filmpeek/api/middleware"
	"filmpeek/configs"
	_ "filmpeek/docs"
	"filmpeek/internal/handler"
	"filmpeek/pkg/response"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(userHandler handler.IUserHandler, movieHandler handler.IMovieHandler) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, response.ServerError, code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	authRoutes := router.Group("api/auth")
	{
		authRoutes.Post("/signup", userHandler.Signup)
		authRoutes.Post("/signin", userHandler.Signin)
		authRoutes.Get("/user/profile", middleware.AuthMiddleware, userHandler.GetProfile)
	}

	movieRoutes := router.Group("api/movie")
	{
		userRoutes := movieRoutes.Group("/user", middleware.AuthMiddleware)
		{
			userRoutes.Post("/favorites/add", userHandler.AddFavorite)
			userRoutes.Post("/favorites/remove", userHandler.RemoveFavorite)
			userRoutes.Get("/favorites", userHandler.GetFavorites)

			userRoutes.Post("/watchlist/create-watchlist", userHandler.CreateWatchlist)
			userRoutes.Patch("/watchlist/add-movie", userHandler.AddMovieToWatchlist)
			userRoutes.Post("/watchlist/delete-movie", userHandler.RemoveMovieFromWatchlist)
			userRoutes.Get("/watchlists", userHandler.GetWatchlists)
			userRoutes.Get("/watchlist/:id", userHandler.GetWatchlist)
			userRoutes.Delete("/watchlist/:id", userHandler.DeleteWatchlist)
		}

		movieRoutes.Get("/popular-movies", movieHandler.GetPopularMovies)
		movieRoutes.Get("/trending", movieHandler.GetTrendingMovies)
		movieRoutes.Get("/top-rated", movieHandler.GetTopRatedMovies)
		movieRoutes.Get("/search", movieHandler.SearchMovies)
		movieRoutes.Get("/:id/similar", movieHandler.GetSimilarMovies)
		movieRoutes.Get("/:id", movieHandler.GetMovieDetail)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default

	router.Use(func(c *fiber.Ctx) error {
		return response.ResponseError(c, response.PageNotFound, fiber.StatusNotFound)
	})
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	response.ResponseMessageModel
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	return response.ResponseOK(c, "FilmPeek")
}

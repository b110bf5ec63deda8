package main

import (
	"log"
	"time"

	"filmpeek/api"
	"filmpeek/configs"
	"filmpeek/db/mongodb"
	"filmpeek/db/redis"
	"filmpeek/internal/handler"
	"filmpeek/internal/repository"
	"filmpeek/internal/service"
	"filmpeek/pkg/httpclient"

	"github.com/getsentry/sentry-go"
)

// @title						FilmPeek
// @version					1.0
// @description				Movie discovery api of the FilmPeek project.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	defer mongoDB.Close()

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Printf("could not connect to redis, catalog caching disabled: %s", err)
		redisClient = nil
	}

	userRep := repository.NewUserRepository(mongoDB.GetDB())
	userSvc := service.NewUserService(userRep)
	userHandler := handler.NewUserHandler(userSvc)

	catalogRep := repository.NewCatalogRepository(httpclient.NewHTTPClient(10 * time.Second))
	cacheSvc := service.NewCacheService(redisClient)
	movieSvc := service.NewMovieService(catalogRep, cacheSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)

	api.InitRouter(userHandler, movieHandler)
	log.Fatal(api.Start("0.0.0.0:" + configs.GetConfigs().Port))
}

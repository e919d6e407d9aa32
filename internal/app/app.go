package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/internal/controller"
	"github.com/AsadUllahBilal/TechThrive/internal/infrastructure/mail"
	"github.com/AsadUllahBilal/TechThrive/internal/infrastructure/media"
	kafkaInfra "github.com/AsadUllahBilal/TechThrive/internal/infrastructure/message-queue/kafka"
	"github.com/AsadUllahBilal/TechThrive/internal/infrastructure/tracing"
	localmiddleware "github.com/AsadUllahBilal/TechThrive/internal/middleware"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	"github.com/AsadUllahBilal/TechThrive/internal/service"
	"github.com/AsadUllahBilal/TechThrive/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	DB        *mongo.Database
	Redis     *redis.Client
	KafkaConn *kafkago.Conn
	Config    *config.Config
	Server    *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	e.Use(traceMiddleware(traceProvider))

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	IsLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	authGroup := e.Group("/api/v1", IsLoggedIn)
	adminGroup := e.Group("/api/v1", IsLoggedIn, localmiddleware.RequireAdmin)

	publisher := kafkaInfra.CreatePublisher(app.KafkaConn)
	cb := media.CreateCircuitBreaker("storefront-service")
	mediaClient := media.CreateMediaClient(app.Config, cb)
	mailSender := mail.CreateSender(app.Config.SMTPConfig)

	productRepo := repository.CreateNewProductRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)
	reviewRepo := repository.CreateNewReviewRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)
	cartRepo := repository.CreateNewCartRepository(app.Redis)

	productSvc := service.CreateProductService(productRepo, categoryRepo, publisher)
	categorySvc := service.CreateCategoryService(categoryRepo)
	reviewSvc := service.CreateReviewService(reviewRepo, productRepo, userRepo, publisher)
	cartSvc := service.CreateCartService(cartRepo)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, cartRepo, publisher)
	userSvc := service.CreateUserService(userRepo, *app.Config)
	statsSvc := service.CreateStatsService(userRepo, orderRepo, productRepo)
	uploadSvc := service.CreateUploadService(mediaClient)
	contactSvc := service.CreateContactService(mailSender, *app.Config)

	controller.CreateProductController(g, adminGroup, productSvc)
	controller.CreateCategoryController(g, adminGroup, categorySvc)
	controller.CreateReviewController(g, authGroup, adminGroup, reviewSvc)
	controller.CreateCartController(authGroup, cartSvc)
	controller.CreateOrderController(authGroup, adminGroup, orderSvc)
	controller.CreateUserController(g, adminGroup, userSvc)
	controller.CreateStatsController(adminGroup, statsSvc)
	controller.CreateUploadController(adminGroup, uploadSvc)
	controller.CreateContactController(g, contactSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			1*time.Hour,
		),
		gocron.NewTask(
			reviewSvc.ReconcileReviewStats,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

// traceMiddleware opens a span per request. A nil provider leaves requests
// untouched so the server still runs when the collector is unreachable.
func traceMiddleware(traceProvider *trace.TracerProvider) echo.MiddlewareFunc {
	if traceProvider == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	tracer := traceProvider.Tracer("storefront-service")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/azor-ahai1/SwapSpace/config"
	"github.com/azor-ahai1/SwapSpace/internal/controller"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/imagehost"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/mailer"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/tracing"
	localMiddleware "github.com/azor-ahai1/SwapSpace/internal/middleware"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/internal/service"
	"github.com/azor-ahai1/SwapSpace/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
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
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("swapspace")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{app.Config.CORSOrigin},
		AllowCredentials: true,
	}))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(localMiddleware.Logger)

	userRepo := repository.CreateNewUserRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)
	messageRepo := repository.CreateNewMessageRepository(app.DB)
	otpRepo := repository.CreateNewOTPRepository(app.DB)

	uploader := imagehost.CreateCloudinaryClient(app.Config.CloudinaryConfig)
	smtpMailer := mailer.CreateSMTPMailer(app.Config.SMTPConfig)

	userSvc := service.CreateUserService(userRepo, otpRepo, smtpMailer, uploader, *app.Config)
	categorySvc := service.CreateCategoryService(categoryRepo)
	productSvc := service.CreateProductService(productRepo, categorySvc, uploader)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, userRepo)
	messageSvc := service.CreateMessageService(messageRepo, userRepo)

	isLoggedIn := localMiddleware.IsLoggedIn(app.Config)

	controller.CreateUserController(g, userSvc, messageSvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn)
	controller.CreateCategoryController(g, categorySvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}

package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/customorderrepo"
	"marketplace/internal/adapters/out/postgres/listingrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := getConfigs()
	if err != nil {
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}

	gormDB, err := openDB(configs)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Error("composition root failed", "error", err)
		os.Exit(1)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		return cmd.Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	smtpPort := 0
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return cmd.Config{}, fmt.Errorf("parsing SMTP_PORT: %w", err)
		}
		smtpPort = parsed
	}

	return cmd.Config{
		HTTPPort:     os.Getenv("HTTP_PORT"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    os.Getenv("DB_SSLMODE"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPSender:   os.Getenv("SMTP_SENDER"),
	}, nil
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError turns the driver's unique-violation into
	// gorm.ErrDuplicatedKey, which the review repository relies on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&listingrepo.ListingDTO{},
		&customorderrepo.CustomOrderDTO{},
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateCustomOrderCommandHandler(),
		app.CreateTransitionCustomOrderCommandHandler(),
		app.CreateDeleteCustomOrderCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateReviewCommandHandler(),
		app.CreateDeleteReviewCommandHandler(),
		app.CreateListCustomOrdersQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
	)
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"dealership/cmd"
	_ "dealership/docs"
	httpin "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres/appointmentrepo"
	"dealership/internal/adapters/out/postgres/deliveryrepo"
	"dealership/internal/adapters/out/postgres/intakerepo"
	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/adapters/out/postgres/paymentrepo"
	"dealership/internal/adapters/out/postgres/vehiclerepo"
	"dealership/internal/adapters/out/postgres/warehouserepo"
	"dealership/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	accrueHandler := app.CreateAccruePenaltiesCommandHandler()
	jobManager := jobs.NewJobManager(&accrueHandler, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		VnpayTmnCode:    goDotEnvVariable("VNPAY_TMN_CODE"),
		VnpayHashSecret: goDotEnvVariable("VNPAY_HASH_SECRET"),
		VnpayReturnURL:  goDotEnvVariable("VNPAY_RETURN_URL"),
		VnpayPayURL:     os.Getenv("VNPAY_PAY_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&warehouserepo.NoteDTO{},
		&vehiclerepo.VehicleDTO{},
		&intakerepo.ImportRequestDTO{},
		&intakerepo.ImportRequestLineDTO{},
		&appointmentrepo.AppointmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	httpin.NewServer(app.CreateHandlers()).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

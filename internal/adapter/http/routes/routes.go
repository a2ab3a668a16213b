package routes

import (
	"context"
	"log"
	"os"
	_ "sales_service/docs" // This will be auto-generated
	"sales_service/internal/adapter/http/handlers"
	"sales_service/internal/adapter/persistence/repository"
	"sales_service/internal/infrastructure/database"
	"sales_service/internal/infrastructure/events"
	"sales_service/internal/infrastructure/logging"
	"sales_service/internal/usecase"
	"sales_service/internal/usecase/interfaces"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const (
	defaultPort = "8080"

	storeDynamoDB = "dynamodb"
	storePostgres = "postgres"
)

// Run will start the server
func Run() {
	logger, err := logging.NewZapLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	metricsEnabled := os.Getenv("PROMETHEUS_ENABLED") == "true"
	if metricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	getRoutes(logger, metricsEnabled)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(logger *zap.Logger, metricsEnabled bool) {
	saleRepo := newSaleRepository(strings.ToLower(strings.TrimSpace(os.Getenv("SALES_STORE"))))
	publisher := newSaleEventPublisher(logger, metricsEnabled, prometheus.DefaultRegisterer)

	saleUseCase := usecase.NewSaleUseCase(saleRepo, publisher)
	saleHandler := handlers.NewSaleHandler(saleUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSalesRoutes(v1, saleHandler)
}

func newSaleRepository(store string) interfaces.ISaleRepository {
	switch store {
	case storePostgres:
		repo := repository.NewSalePostgresRepository(database.ConnectPostgres())
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to prepare postgres schema: %v", err)
		}
		log.Printf("[sale][routes] using postgres sale store")
		return repo
	case "", storeDynamoDB:
		log.Printf("[sale][routes] using dynamodb sale store")
		return repository.NewSaleDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Fatalf("Unknown SALES_STORE %q (expected %s or %s)", store, storeDynamoDB, storePostgres)
		return nil
	}
}

func newSaleEventPublisher(logger *zap.Logger, metricsEnabled bool, reg prometheus.Registerer) interfaces.ISaleEventPublisher {
	sinks := []interfaces.ISaleEventPublisher{events.NewZapEventPublisher(logger)}
	if metricsEnabled {
		metrics, err := events.NewMetricsEventPublisher(reg)
		if err != nil {
			log.Printf("[sale][routes] sale metrics disabled err=%v", err)
		} else {
			sinks = append(sinks, metrics)
		}
	}
	return events.NewMultiEventPublisher(sinks...)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

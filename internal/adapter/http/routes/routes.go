package routes

import (
	"log"
	"strconv"

	_ "revenda_xpto/docs" // This will be auto-generated
	"revenda_xpto/internal/adapter/http/handlers"
	repository2 "revenda_xpto/internal/adapter/persistence/repository"
	"revenda_xpto/internal/infrastructure/catalog"
	"revenda_xpto/internal/infrastructure/database"
	"revenda_xpto/internal/infrastructure/salesgw"
	"revenda_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	transitionRepo := repository2.NewTransitionLogDynamoRepository(ddb)

	catalogClient := catalog.NewClient()
	salesClient := salesgw.NewClient()

	saleWorkflowUseCase := usecase.NewSaleWorkflowUseCase(salesClient, catalogClient, transitionRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(catalogClient)
	paymentUseCase := usecase.NewPaymentUseCase(catalogClient)
	dashboardUseCase := usecase.NewDashboardUseCase(catalogClient, salesClient)

	saleHandler := handlers.NewSaleHandler(saleWorkflowUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConsoleRoutes(v1, vehicleHandler, saleHandler, paymentHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines from the two upstream calls of a
// single transition can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

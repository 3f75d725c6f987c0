package routes

import (
	_ "craftbridge/docs" // This will be auto-generated
	"craftbridge/internal/adapter/http/handlers"
	repository2 "craftbridge/internal/adapter/persistence/repository"
	"craftbridge/internal/infrastructure/database"
	"craftbridge/internal/infrastructure/payments"
	"craftbridge/internal/usecase"
	"craftbridge/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
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

	approvalRepo := repository2.NewDesignApprovalDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	purchaseRepo := repository2.NewPurchaseDynamoRepository(ddb)
	catalogRepo := repository2.NewItemCatalogDynamoRepository(ddb)
	preferenceRepo := repository2.NewPreferenceDynamoRepository(ddb)

	approvalUseCase := usecase.NewDesignApprovalUseCase(approvalRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, approvalRepo, catalogRepo)
	workflowUseCase := usecase.NewWorkflowUseCase(approvalRepo, quoteRepo, catalogRepo)
	preferenceUseCase := usecase.NewPreferenceUseCase(preferenceRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, workflowUseCase, paymentGateway)

	approvalHandler := handlers.NewDesignApprovalHandler(approvalUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUseCase)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, approvalHandler, quoteHandler, workflowHandler, purchaseHandler, preferenceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

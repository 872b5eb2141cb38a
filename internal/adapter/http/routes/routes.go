package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "retail_agent/docs" // This will be auto-generated
	"retail_agent/internal/adapter/http/handlers"
	"retail_agent/internal/adapter/persistence/repository"
	"retail_agent/internal/infrastructure/database"
	"retail_agent/internal/infrastructure/generation"
	"retail_agent/internal/usecase"

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

	productRepo := repository.NewProductDynamoRepository(ddb)
	cartRepo := repository.NewCartDynamoRepository(ddb)
	discountRepo := repository.NewDiscountDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	sessionRepo := repository.NewChatSessionDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, discountRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartUseCase)

	// Without a Gemini key the assistant degrades to deterministic replies;
	// the transactional surface is unaffected.
	var upstream generation.Upstream
	gemini, err := generation.NewGeminiUpstream(context.Background(), os.Getenv("GOOGLE_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		upstream = gemini
	}
	generator := generation.NewClient(upstream)

	chatUseCase := usecase.NewChatUseCase(catalogUseCase, cartUseCase, orderUseCase, sessionRepo, generator)

	chatHandler := handlers.NewChatHandler(chatUseCase)
	productHandler := handlers.NewProductHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, chatHandler, productHandler, cartHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"log"
	_ "lecturer_claims/docs" // This will be auto-generated
	"lecturer_claims/internal/adapter/http/handlers"
	repository2 "lecturer_claims/internal/adapter/persistence/repository"
	"lecturer_claims/internal/infrastructure/storage"
	"lecturer_claims/internal/usecase"
	"os"
	"strconv"
	"strings"

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
	claimRepo := repository2.NewClaimMemoryRepository()
	if seedEnabled() {
		claimRepo.Seed(repository2.SampleClaims()...)
		log.Printf("[claims][routes] seeded %d sample claims", len(repository2.SampleClaims()))
	}

	attachmentStore := storage.NewDiskAttachmentStore(getenvDefault("CLAIMS_UPLOAD_DIR", "uploads"))

	claimUseCase := usecase.NewClaimUseCase(claimRepo, attachmentStore)
	claimHandler := handlers.NewClaimHandler(claimUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, claimHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// seedEnabled controls the demo fixtures; on by default so a fresh
// process has claims to verify and track.
func seedEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CLAIMS_SEED"))) {
	case "0", "false", "no", "off":
		return false
	}
	return true
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

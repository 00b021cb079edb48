package routes

import (
	"lecturer_claims/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims = "/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		// Submission (lecturer).
		claims.GET("/new", claimHandler.NewClaim)
		claims.POST("", claimHandler.SubmitClaim)

		// Verification (coordinator).
		claims.GET("/verify", claimHandler.ListForVerification)
		claims.PATCH("/:id/approve", claimHandler.ApproveClaim)
		claims.PATCH("/:id/reject", claimHandler.RejectClaim)

		// Tracking (lecturer).
		claims.GET("/track", claimHandler.ListForTracking)
		claims.GET("/:id/document", claimHandler.DownloadDocument)
	}
}

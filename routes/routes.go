package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every /api route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupCashierRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupOrderRoutes(api, db)
}

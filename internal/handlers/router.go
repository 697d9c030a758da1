package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harukimori/study-log-api/internal/auth"
	apierrors "github.com/harukimori/study-log-api/internal/errors"
	"github.com/harukimori/study-log-api/internal/middleware"
)

// RegisterRoutes wires every endpoint onto the engine. Auth endpoints are
// public; everything else sits behind the bearer-token middleware.
func RegisterRoutes(
	r *gin.Engine,
	tokens *auth.Manager,
	authHandler *AuthHandler,
	itemHandler *StudyItemHandler,
	logHandler *LogHandler,
	statsHandler *StatsHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Study Log API is running",
		})
	})

	r.GET("/api-info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Study Log API",
			"status":  "running",
			"endpoints": gin.H{
				"POST /auth/register":     "create user account",
				"POST /auth/login":        "issue bearer token",
				"GET /auth/me":            "fetch caller's profile (auth)",
				"GET /study-items":        "list study items (auth)",
				"POST /study-items":       "create study item (auth)",
				"PUT /study-items/:id":    "update study item (auth)",
				"DELETE /study-items/:id": "delete study item (auth)",
				"GET /logs":               "list logs, filterable (auth)",
				"POST /logs":              "create log (auth)",
				"PUT /logs/:id":           "update log (auth)",
				"DELETE /logs/:id":        "delete log (auth)",
				"GET /stats":              "aggregate statistics (auth)",
			},
		})
	})

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
	}

	items := r.Group("/study-items")
	items.Use(middleware.RequireAuth(tokens))
	{
		items.GET("", itemHandler.ListStudyItems)
		items.POST("", itemHandler.CreateStudyItem)
		items.PUT("/:id", itemHandler.UpdateStudyItem)
		items.DELETE("/:id", itemHandler.DeleteStudyItem)
	}

	logs := r.Group("/logs")
	logs.Use(middleware.RequireAuth(tokens))
	{
		logs.GET("", logHandler.ListLogs)
		logs.POST("", logHandler.CreateLog)
		logs.PUT("/:id", logHandler.UpdateLog)
		logs.DELETE("/:id", logHandler.DeleteLog)
	}

	r.GET("/stats", middleware.RequireAuth(tokens), statsHandler.GetStats)

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Endpoint not found")
	})
}

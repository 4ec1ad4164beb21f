// special-sheets-crm/internal/routes/router.go
package routes

import (
	"special-sheets-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// Публичные маршруты: вход в систему.
	RegisterAuthRoutes(r)

	// Всё остальное закрыто проверкой JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}

// special-sheets-crm/internal/routes/auth_routes.go
package routes

import (
	"special-sheets-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты аутентификации.
// Проверка токена здесь не нужна.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/auth/login", handlers.LoginHandler)
	r.POST("/auth/logout", handlers.LogoutHandler)
}

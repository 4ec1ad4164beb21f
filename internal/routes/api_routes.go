// special-sheets-crm/internal/routes/api_routes.go
package routes

import (
	"special-sheets-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует маршруты API, требующие аутентификации.
// Имена эндпоинтов повторяют контракт фронтенда.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	// --- ЗАКАЗЫ ---
	order := api.Group("/order")
	{
		order.POST("/create-new-order", handlers.CreateOrderHandler)
		order.GET("/get-all-orders", handlers.ListOrdersHandler)
		order.GET("/get-order-details/:id", handlers.GetOrderHandler)
		order.PATCH("/update-order-assigned-index/:id", handlers.UpdateOrderAssignedIndexHandler)
		order.DELETE("/delete-order-by-id/:id", handlers.DeleteOrderHandler)
		order.PATCH("/assign-client/:id", handlers.AssignClientHandler)
		order.PATCH("/set-status-order-to-finish/:id", handlers.SetOrderStatusToFinishHandler)
		order.PATCH("/set-status-order-to-cancel/:id", handlers.SetOrderStatusToCancelHandler)
		order.PATCH("/set-status-order-to-process/:id", handlers.SetOrderStatusToProcessHandler)

		// Товары внутри заказа
		order.POST("/add-product-to-order/:id", handlers.AddProductToOrderHandler)
		order.PATCH("/update-order-assigned-product/:id/:productId", handlers.UpdateProductHandler)
		order.DELETE("/delete-product-from-order/:id/:productId", handlers.DeleteProductFromOrderHandler)
		order.POST("/generate-order-payment-graphics/:id/:productId", handlers.GenerateGraphicsHandler)

		// Оплаты по строкам графика
		order.POST("/add-payment-to-order/:id/:productId/:paymentId", handlers.AddPaymentHandler)
		order.PATCH("/update-payment-details/:id/:productId/:paymentId", handlers.UpdatePaymentDetailsHandler)
		order.GET("/get-todays-payments", handlers.TodaysPaymentsHandler)
		order.GET("/get-unfinished-payments", handlers.UnfinishedPaymentsHandler)

		// Уведомления и выгрузка
		order.POST("/send-notification-by-product-id/:id/:productId", handlers.NotifyScheduleHandler)
		order.GET("/export", handlers.ExportOrdersHandler)
	}

	// --- КЛИЕНТЫ ---
	client := api.Group("/client")
	{
		client.POST("/create-client", handlers.CreateClientHandler)
		client.GET("/get-all-clients", handlers.GetAllClientsHandler)
		client.PATCH("/update-client/:id", handlers.UpdateClientHandler)
		client.DELETE("/delete-client/:id", handlers.DeleteClientHandler)
	}

	// --- ЗАМЕТКИ ---
	comment := api.Group("/comment")
	{
		comment.GET("/get-all-comments", handlers.GetAllCommentsHandler)
		comment.POST("/create-comment", handlers.CreateCommentHandler)
		comment.PATCH("/update-comment/:id", handlers.UpdateCommentHandler)
		comment.DELETE("/delete-comment/:id", handlers.DeleteCommentHandler)
	}

	// --- ПАНЕЛЬ МЕТРИК ---
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/metrics", handlers.GetDashboardMetricsHandler)
		dashboard.PUT("/settings", handlers.UpdateDashboardSettingsHandler)
	}
}

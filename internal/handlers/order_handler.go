// special-sheets-crm/internal/handlers/order_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/ledger"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// OrderView — заказ плюс производные показатели леджера для фронтенда.
type OrderView struct {
	models.Order
	DisplayStatus string       `json:"order_display_status"`
	TotalAmount   models.Money `json:"order_total_amount"`
	TotalPrepaid  models.Money `json:"order_total_prepaid"`
	TotalPaid     models.Money `json:"order_total_paid"`
}

func orderView(order models.Order) OrderView {
	return OrderView{
		Order:         order,
		DisplayStatus: ledger.DisplayStatus(order.Status),
		TotalAmount:   ledger.OrderTotalAmount(order),
		TotalPrepaid:  ledger.OrderTotalPrepaid(order),
		TotalPaid:     ledger.OrderTotalPaid(order),
	}
}

// loadOrder подтягивает заказ целиком: клиент, товары, строки графиков
// в порядке их номеров. Вложенность заказ → товары → график — единственная
// форма, в которой заказ ходит между хранилищем и леджером.
func loadOrder(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.
		Preload("Client").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.id ASC")
		}).
		Preload("Products.Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installments.seq ASC")
		}).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type createOrderInput struct {
	GeneratedID   string `json:"order_generated_id"`
	AssignedIndex int    `json:"order_assigned_index"`
}

// CreateOrderHandler создаёт пустой заказ. Человекочитаемый ID либо
// приходит от фронтенда, либо генерируется здесь.
func CreateOrderHandler(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generatedID := strings.TrimSpace(input.GeneratedID)
	if generatedID == "" {
		generatedID = fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8]))
	}

	order := models.Order{
		GeneratedID:   generatedID,
		AssignedIndex: input.AssignedIndex,
		CreatedDate:   time.Now().UTC(),
		Status:        models.OrderStatusPending,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "Заказ с таким ID уже существует"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать заказ"})
		return
	}

	invalidateMetricsCache()
	c.JSON(http.StatusCreated, gin.H{"data": orderView(order)})
}

// ListOrdersHandler возвращает все заказы с товарами и графиками.
func ListOrdersHandler(c *gin.Context) {
	var orders []models.Order
	query := config.DB.
		Preload("Client").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.id ASC")
		}).
		Preload("Products.Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installments.seq ASC")
		}).
		Order("assigned_index ASC, id ASC")

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(generated_id) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить список заказов"})
		return
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// GetOrderHandler возвращает один заказ по ID.
func GetOrderHandler(c *gin.Context) {
	order, err := loadOrder(config.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заказ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orderView(*order)})
}

type assignedIndexInput struct {
	AssignedIndex int `json:"order_assigned_index"`
}

// UpdateOrderAssignedIndexHandler меняет ручной индекс сортировки.
// Индекс — чисто отображаемая величина, уникальность не требуется.
func UpdateOrderAssignedIndexHandler(c *gin.Context) {
	var input assignedIndexInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
		return
	}

	if err := config.DB.Model(&order).Update("assigned_index", input.AssignedIndex).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить индекс заказа"})
		return
	}

	updated, err := loadOrder(config.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заказ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orderView(*updated)})
}

type assignClientInput struct {
	ClientID uint `json:"client_id" binding:"required"`
}

// AssignClientHandler привязывает клиента к заказу. Храним только ID:
// заказ ссылается на справочник клиентов, но не владеет им.
func AssignClientHandler(c *gin.Context) {
	var input assignClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан ID клиента"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
		return
	}

	var client models.Client
	if err := config.DB.First(&client, input.ClientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Клиент не найден"})
		return
	}

	if err := config.DB.Model(&order).Update("client_id", client.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось привязать клиента"})
		return
	}

	updated, err := loadOrder(config.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заказ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orderView(*updated)})
}

// DeleteOrderHandler удаляет заказ целиком. Заказ с хотя бы одной оплатой
// удалить нельзя — целостность леджера важнее кнопки.
func DeleteOrderHandler(c *gin.Context) {
	order, err := loadOrder(config.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заказ"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if !ledger.CanDeleteOrder(*order) {
			return ledger.ErrDeletionBlocked
		}
		for _, p := range order.Products {
			if err := tx.Where("product_id = ?", p.ID).Delete(&models.Installment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
	if err != nil {
		if errors.Is(err, ledger.ErrDeletionBlocked) {
			c.JSON(http.StatusConflict, gin.H{"error": "По заказу уже были оплаты, удаление запрещено"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить заказ"})
		return
	}

	invalidateMetricsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Заказ удалён"})
}

// SetOrderStatusToFinishHandler переводит заказ в "Завершен".
// Статус меняется только этим явным запросом: полная оплата графика сама
// по себе заказ не завершает.
func SetOrderStatusToFinishHandler(c *gin.Context) {
	setOrderStatus(c, models.OrderStatusFinished)
}

// SetOrderStatusToCancelHandler переводит заказ в "Отменен".
func SetOrderStatusToCancelHandler(c *gin.Context) {
	setOrderStatus(c, models.OrderStatusCancelled)
}

// SetOrderStatusToProcessHandler переводит заказ в "Активный".
func SetOrderStatusToProcessHandler(c *gin.Context) {
	setOrderStatus(c, models.OrderStatusProcess)
}

func setOrderStatus(c *gin.Context, status models.OrderStatus) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
		return
	}

	if err := config.DB.Model(&order).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить статус заказа"})
		return
	}

	// Ответ собирается из полностью загруженного заказа: без товаров и
	// графиков суммы в orderView были бы нулевыми.
	updated, err := loadOrder(config.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заказ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orderView(*updated)})
}

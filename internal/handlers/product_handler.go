// special-sheets-crm/internal/handlers/product_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/ledger"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

type productInput struct {
	Name            string `json:"product_name" binding:"required"`
	FullAmount      int64  `json:"product_full_amount"`
	PrePaidAmount   int64  `json:"product_pre_paid_amount"`
	ProfitAmount    int64  `json:"product_profit_amount"`
	PeriodStartDate string `json:"product_payment_period_start_date" binding:"required"`
	PeriodEndDate   string `json:"product_payment_period_end_date" binding:"required"`
}

// validate проверяет входные данные товара. Правила общие для создания и
// обновления: суммы неотрицательны, предоплата и прибыль не превышают полную
// сумму, период не вывернут. Текст ошибки уходит фронтенду как есть.
func (in *productInput) validate() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, in.PeriodStartDate)
	if err == nil {
		end, err = time.Parse(dateLayout, in.PeriodEndDate)
	}
	if err != nil {
		return start, end, errors.New("Даты должны быть в формате ГГГГ-ММ-ДД")
	}
	if in.FullAmount < 0 || in.PrePaidAmount < 0 || in.ProfitAmount < 0 {
		return start, end, errors.New("Суммы не могут быть отрицательными")
	}
	if in.PrePaidAmount > in.FullAmount {
		return start, end, errors.New("Предоплата не может превышать полную сумму")
	}
	if in.ProfitAmount > in.FullAmount {
		return start, end, errors.New("Прибыль не может превышать полную сумму")
	}
	if end.Before(start) {
		return start, end, errors.New("Дата окончания раньше даты начала")
	}
	return start, end, nil
}

// AddProductToOrderHandler добавляет товар в заказ. График рассрочки на этом
// шаге не строится, его создаёт отдельный запрос generate-graphics.
func AddProductToOrderHandler(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := input.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
		return
	}

	product := models.Product{
		OrderID:         order.ID,
		Name:            input.Name,
		FullAmount:      models.Money(input.FullAmount),
		PrePaidAmount:   models.Money(input.PrePaidAmount),
		ProfitAmount:    models.Money(input.ProfitAmount),
		PeriodStartDate: start,
		PeriodEndDate:   end,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось добавить товар"})
		return
	}

	invalidateMetricsCache()
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// UpdateProductHandler меняет данные товара. Пока графика нет, править можно
// всё; после его создания суммы и период заморожены, иначе график перестал бы
// соответствовать товару.
func UpdateProductHandler(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := input.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	err = config.DB.
		Preload("Installments").
		Where("order_id = ?", c.Param("id")).
		First(&product, c.Param("productId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить товар"})
		return
	}

	if product.HasSchedule() {
		financialChange := product.FullAmount != models.Money(input.FullAmount) ||
			product.PrePaidAmount != models.Money(input.PrePaidAmount) ||
			!product.PeriodStartDate.Equal(start) ||
			!product.PeriodEndDate.Equal(end)
		if financialChange {
			c.JSON(http.StatusConflict, gin.H{"error": "У товара уже есть график рассрочки, суммы и период менять нельзя"})
			return
		}
	}

	updates := map[string]interface{}{
		"name":              input.Name,
		"full_amount":       input.FullAmount,
		"pre_paid_amount":   input.PrePaidAmount,
		"profit_amount":     input.ProfitAmount,
		"period_start_date": start,
		"period_end_date":   end,
	}
	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить товар"})
		return
	}

	invalidateMetricsCache()
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// DeleteProductFromOrderHandler удаляет товар вместе с его графиком.
// Товар, по которому уже платили, удалить нельзя.
func DeleteProductFromOrderHandler(c *gin.Context) {
	var product models.Product
	err := config.DB.
		Preload("Installments").
		Where("order_id = ?", c.Param("id")).
		First(&product, c.Param("productId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить товар"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if !ledger.CanDeleteProduct(product) {
			return ledger.ErrDeletionBlocked
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Installment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, product.ID).Error
	})
	if err != nil {
		if errors.Is(err, ledger.ErrDeletionBlocked) {
			c.JSON(http.StatusConflict, gin.H{"error": "По товару уже были оплаты, удаление запрещено"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить товар"})
		return
	}

	invalidateMetricsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Товар удалён"})
}

// GenerateGraphicsHandler строит (или перестраивает) график рассрочки товара.
// Количество платежей берётся из query-параметра count, по умолчанию 12.
// Строка товара блокируется на время транзакции, чтобы два параллельных
// запроса не породили два графика.
func GenerateGraphicsHandler(c *gin.Context) {
	count := ledger.DefaultInstallmentCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Параметр count должен быть целым числом"})
			return
		}
		count = parsed
	}

	var result []models.Installment
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", c.Param("id")).
			First(&product, c.Param("productId")).Error
		if err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).
			Order("seq ASC").
			Find(&product.Installments).Error; err != nil {
			return err
		}

		installments, err := ledger.GenerateSchedule(&product, count)
		if err != nil {
			return err
		}

		// Старый график (без единой оплаты, иначе GenerateSchedule бы
		// отказал) заменяется новым целиком.
		if err := tx.Unscoped().
			Where("product_id = ?", product.ID).
			Delete(&models.Installment{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&installments).Error; err != nil {
			return err
		}

		result = installments
		return nil
	})

	switch {
	case txErr == nil:
		c.JSON(http.StatusCreated, gin.H{"data": result})
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден"})
	case errors.Is(txErr, ledger.ErrInvalidScheduleInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные параметры для построения графика"})
	case errors.Is(txErr, ledger.ErrScheduleAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{"error": "По графику уже есть оплаты, перестроить его нельзя"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось построить график"})
	}
}

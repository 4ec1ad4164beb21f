// special-sheets-crm/internal/handlers/payment_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/ledger"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentInput struct {
	Amount int64 `json:"payment_amount"`
}

// PaymentView — строка графика с её состоянием и контекстом заказа,
// в котором она живёт. Используется списками платежей панели.
type PaymentView struct {
	models.Installment
	PaymentState   ledger.Status `json:"payment_state"`
	ProductName    string        `json:"product_name"`
	OrderID        uint          `json:"order_id"`
	OrderGenerated string        `json:"order_generated_id"`
}

// AddPaymentHandler фиксирует оплату по строке графика.
func AddPaymentHandler(c *gin.Context) {
	applyPaymentRequest(c)
}

// UpdatePaymentDetailsHandler исправляет ранее введённую оплату. Сумма в
// теле — новый общий итог по строке, а не добавка к прежнему.
func UpdatePaymentDetailsHandler(c *gin.Context) {
	applyPaymentRequest(c)
}

// applyPaymentRequest — общий путь записи оплаты. Строка графика
// блокируется на время транзакции: две кассы, одновременно вносящие оплату
// по одной строке, выполняются строго по очереди.
func applyPaymentRequest(c *gin.Context) {
	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма оплаты не может быть отрицательной"})
		return
	}

	productID, installmentID, err := paymentPathIDs(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Платёж не найден"})
		return
	}

	var applied *models.Installment
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		// Блокируется строка товара — та же, что держит перестроение
		// графика. Запись оплаты и перестроение по одному товару
		// выполняются строго по очереди, иначе перестроение могло бы
		// прочитать график ещё без оплаты и снести только что
		// оплаченную строку.
		var target models.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", c.Param("id")).
			First(&target, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.ErrUnknownTarget
			}
			return err
		}

		order, err := loadOrder(tx, c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.ErrUnknownTarget
			}
			return err
		}

		applied, err = ledger.ApplyPayment(order, productID, installmentID, models.Money(input.Amount), time.Now())
		if err != nil {
			return err
		}

		return tx.Model(&models.Installment{}).
			Where("id = ?", applied.ID).
			Updates(map[string]interface{}{
				"paid_amount":    applied.PaidAmount,
				"completed_date": applied.CompletedDate,
				"status":         applied.Status,
			}).Error
	})

	switch {
	case txErr == nil:
		invalidateMetricsCache()
		c.JSON(http.StatusOK, gin.H{"data": applied})
	case errors.Is(txErr, ledger.ErrUnknownTarget):
		c.JSON(http.StatusNotFound, gin.H{"error": "Платёж не найден"})
	case errors.Is(txErr, ledger.ErrOverpaymentRejected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Оплата не может превышать сумму платежа"})
	case errors.Is(txErr, ledger.ErrAlreadySettled):
		c.JSON(http.StatusConflict, gin.H{"error": "Платёж уже закрыт, изменение запрещено"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось записать оплату"})
	}
}

// paymentPathIDs разбирает product/payment ID из пути. Принадлежность строки
// товару и товара заказу проверяет леджер, здесь только парсинг.
func paymentPathIDs(c *gin.Context) (productID, installmentID uint, err error) {
	productID, err = parseUintParam(c, "productId")
	if err != nil {
		return 0, 0, err
	}
	installmentID, err = parseUintParam(c, "paymentId")
	if err != nil {
		return 0, 0, err
	}
	return productID, installmentID, nil
}

// TodaysPaymentsHandler возвращает строки графиков с датой оплаты сегодня,
// ещё не закрытые. Список для утреннего обзвона.
func TodaysPaymentsHandler(c *gin.Context) {
	today := time.Now().UTC().Format(dateLayout)

	var installments []models.Installment
	err := config.DB.
		Where("DATE(scheduled_pay_day) = ?", today).
		Where("paid_amount < amount").
		Order("scheduled_pay_day ASC, id ASC").
		Find(&installments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить платежи на сегодня"})
		return
	}

	views, err := paymentViews(installments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить платежи на сегодня"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// UnfinishedPaymentsHandler возвращает все незакрытые строки графиков,
// включая просроченные.
func UnfinishedPaymentsHandler(c *gin.Context) {
	var installments []models.Installment
	err := config.DB.
		Where("paid_amount < amount").
		Order("scheduled_pay_day ASC, id ASC").
		Scopes(Paginate(c)).
		Find(&installments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить незакрытые платежи"})
		return
	}

	var total int64
	if err := config.DB.Model(&models.Installment{}).
		Where("paid_amount < amount").
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить незакрытые платежи"})
		return
	}

	views, err := paymentViews(installments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить незакрытые платежи"})
		return
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, views, total))
}

// paymentViews дополняет строки графиков состоянием и контекстом
// товара/заказа одним запросом по товарам.
func paymentViews(installments []models.Installment) ([]PaymentView, error) {
	views := make([]PaymentView, 0, len(installments))
	if len(installments) == 0 {
		return views, nil
	}

	productIDs := make([]uint, 0, len(installments))
	for _, inst := range installments {
		productIDs = append(productIDs, inst.ProductID)
	}

	var products []models.Product
	if err := config.DB.Preload("Order").Find(&products, productIDs).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	now := time.Now()
	for _, inst := range installments {
		view := PaymentView{
			Installment:  inst,
			PaymentState: ledger.Classify(inst, now),
		}
		if p, ok := byID[inst.ProductID]; ok {
			view.ProductName = p.Name
			view.OrderID = p.OrderID
			if p.Order != nil {
				view.OrderGenerated = p.Order.GeneratedID
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// special-sheets-crm/internal/handlers/notify_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/notify"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Telegram настраивается один раз при старте. nil — уведомления выключены.
var Telegram *notify.Telegram

type notifyScheduleInput struct {
	ChatID string `json:"chat_id" binding:"required"`
}

// NotifyScheduleHandler отправляет клиенту график рассрочки товара в
// Telegram. Язык сообщения берётся из карточки клиента.
func NotifyScheduleHandler(c *gin.Context) {
	if Telegram == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Уведомления не настроены"})
		return
	}

	var input notifyScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан chat_id"})
		return
	}

	order, err := loadOrder(config.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заказ"})
		return
	}

	productID, err := parseUintParam(c, "productId")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден"})
		return
	}

	var product *models.Product
	for i := range order.Products {
		if order.Products[i].ID == productID {
			product = &order.Products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Товар не найден"})
		return
	}
	if !product.HasSchedule() {
		c.JSON(http.StatusConflict, gin.H{"error": "У товара ещё нет графика рассрочки"})
		return
	}

	lang := ""
	if order.Client != nil {
		lang = order.Client.PreferredLanguage
	}
	text := formatScheduleMessage(order, product, lang)

	if err := Telegram.SendMessage(c.Request.Context(), input.ChatID, text); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Не удалось отправить уведомление"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Уведомление отправлено"})
}

func formatScheduleMessage(order *models.Order, product *models.Product, lang string) string {
	var b strings.Builder
	if lang == "uz" {
		fmt.Fprintf(&b, "<b>%s</b> buyurtmasi, \"%s\" uchun to'lov jadvali:\n", order.GeneratedID, product.Name)
		for _, inst := range product.Installments {
			fmt.Fprintf(&b, "%d. %s — %d\n", inst.Seq, inst.ScheduledPayDay.Format("02.01.2006"), inst.Amount.Int64())
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Заказ <b>%s</b>, график оплат по товару \"%s\":\n", order.GeneratedID, product.Name)
	for _, inst := range product.Installments {
		fmt.Fprintf(&b, "%d. %s — %d\n", inst.Seq, inst.ScheduledPayDay.Format("02.01.2006"), inst.Amount.Int64())
	}
	return b.String()
}

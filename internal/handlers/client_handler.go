// special-sheets-crm/internal/handlers/client_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"special-sheets-crm/config"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type clientInput struct {
	Name              string `json:"client_name" binding:"required"`
	Surname           string `json:"client_surname"`
	PhoneNumber       string `json:"client_phone_number"`
	PreferredLanguage string `json:"client_prefered_language"`
}

// CreateClientHandler добавляет клиента в справочник.
func CreateClientHandler(c *gin.Context) {
	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := models.Client{
		Name:              strings.TrimSpace(input.Name),
		Surname:           strings.TrimSpace(input.Surname),
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		PreferredLanguage: input.PreferredLanguage,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать клиента"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": client})
}

// GetAllClientsHandler возвращает справочник клиентов постранично,
// с поиском по имени, фамилии и телефону.
func GetAllClientsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Client{})
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(surname) LIKE ? OR phone_number LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить список клиентов"})
		return
	}

	var clients []models.Client
	if err := query.Order("surname ASC, name ASC").Scopes(Paginate(c)).Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить список клиентов"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clients, total))
}

// UpdateClientHandler правит запись клиента.
func UpdateClientHandler(c *gin.Context) {
	var input clientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Клиент не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить клиента"})
		return
	}

	updates := map[string]interface{}{
		"name":               strings.TrimSpace(input.Name),
		"surname":            strings.TrimSpace(input.Surname),
		"phone_number":       strings.TrimSpace(input.PhoneNumber),
		"preferred_language": input.PreferredLanguage,
	}
	if err := config.DB.Model(&client).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить клиента"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": client})
}

// DeleteClientHandler удаляет клиента из справочника. Заказы, к которым он
// был привязан, остаются — ссылка просто обнуляется.
func DeleteClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Клиент не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить клиента"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("client_id = ?", client.ID).
			Update("client_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить клиента"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Клиент удалён"})
}

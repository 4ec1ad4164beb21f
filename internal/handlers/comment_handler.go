// special-sheets-crm/internal/handlers/comment_handler.go
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

type commentInput struct {
	Body string `json:"comment_body" binding:"required"`
}

// GetAllCommentsHandler возвращает заметки, новые сверху.
func GetAllCommentsHandler(c *gin.Context) {
	var comments []models.Comment
	if err := config.DB.Order("created_at DESC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заметки"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comments})
}

// CreateCommentHandler добавляет заметку.
func CreateCommentHandler(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Текст заметки не может быть пустым"})
		return
	}

	comment := models.Comment{Body: strings.TrimSpace(input.Body)}
	if comment.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Текст заметки не может быть пустым"})
		return
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать заметку"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": comment})
}

// UpdateCommentHandler правит текст заметки.
func UpdateCommentHandler(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Текст заметки не может быть пустым"})
		return
	}

	var comment models.Comment
	if err := config.DB.First(&comment, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заметка не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить заметку"})
		return
	}

	if err := config.DB.Model(&comment).Update("body", strings.TrimSpace(input.Body)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить заметку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": comment})
}

// DeleteCommentHandler удаляет заметку.
func DeleteCommentHandler(c *gin.Context) {
	result := config.DB.Delete(&models.Comment{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить заметку"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Заметка не найдена"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Заметка удалена"})
}

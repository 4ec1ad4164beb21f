package handlers

import (
	"testing"
	"time"

	"special-sheets-crm/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatScheduleMessage(t *testing.T) {
	order := &models.Order{GeneratedID: "ORD-A1B2C3D4"}
	product := &models.Product{
		Name: "Кухонный гарнитур",
		Installments: []models.Installment{
			{Seq: 1, Amount: 100, ScheduledPayDay: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Seq: 2, Amount: 150, ScheduledPayDay: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	t.Run("русский текст по умолчанию", func(t *testing.T) {
		text := formatScheduleMessage(order, product, "")
		assert.Contains(t, text, "ORD-A1B2C3D4")
		assert.Contains(t, text, "Кухонный гарнитур")
		assert.Contains(t, text, "1. 01.01.2024 — 100")
		assert.Contains(t, text, "2. 01.02.2024 — 150")
	})

	t.Run("узбекский по языку клиента", func(t *testing.T) {
		text := formatScheduleMessage(order, product, "uz")
		assert.Contains(t, text, "to'lov jadvali")
		assert.Contains(t, text, "1. 01.01.2024 — 100")
	})
}

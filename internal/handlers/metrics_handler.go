// special-sheets-crm/internal/handlers/metrics_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/ledger"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm/clause"
)

const (
	metricsCacheKey = "dashboard:metrics"
	metricsCacheTTL = 5 * time.Minute
)

// GetDashboardMetricsHandler считает сводку портфеля: расходы, поступления
// и баланс по всем заказам. Результат кэшируется в Redis и сбрасывается
// любой операцией, меняющей деньги.
func GetDashboardMetricsHandler(c *gin.Context) {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, metricsCacheKey).Result()
		if err == nil {
			var metrics ledger.PortfolioMetrics
			if json.Unmarshal([]byte(cached), &metrics) == nil {
				c.JSON(http.StatusOK, gin.H{"data": metrics, "cached": true})
				return
			}
		} else if err != redis.Nil {
			slog.Error("Ошибка чтения метрик из Redis", "error", err)
		}
	}

	var orders []models.Order
	err := config.DB.
		Preload("Products").
		Preload("Products.Installments").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать метрики"})
		return
	}

	investment, profit, err := loadDashboardSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось посчитать метрики"})
		return
	}

	metrics := ledger.ComputeMetrics(orders, investment, profit)

	if config.RDB != nil {
		if payload, err := json.Marshal(metrics); err == nil {
			if err := config.RDB.Set(config.Ctx, metricsCacheKey, payload, metricsCacheTTL).Err(); err != nil {
				slog.Error("Не удалось записать метрики в кэш", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": metrics, "cached": false})
}

type dashboardSettingsInput struct {
	Investment int64 `json:"investment"`
	Profit     int64 `json:"profit"`
}

// UpdateDashboardSettingsHandler сохраняет ручные входы панели:
// инвестиции и прибыль.
func UpdateDashboardSettingsHandler(c *gin.Context) {
	var input dashboardSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Investment < 0 || input.Profit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Значения не могут быть отрицательными"})
		return
	}

	settings := []models.Setting{
		{Key: models.SettingInvestment, Value: input.Investment},
		{Key: models.SettingProfit, Value: input.Profit},
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&settings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить настройки"})
		return
	}

	invalidateMetricsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Настройки сохранены"})
}

func loadDashboardSettings() (investment, profit models.Money, err error) {
	var settings []models.Setting
	if err = config.DB.
		Where("key IN ?", []string{models.SettingInvestment, models.SettingProfit}).
		Find(&settings).Error; err != nil {
		return 0, 0, err
	}
	for _, s := range settings {
		switch s.Key {
		case models.SettingInvestment:
			investment = models.Money(s.Value)
		case models.SettingProfit:
			profit = models.Money(s.Value)
		}
	}
	return investment, profit, nil
}

// invalidateMetricsCache сбрасывает кэш сводки. Зовётся из всех хендлеров,
// меняющих заказы, товары или оплаты.
func invalidateMetricsCache() {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, metricsCacheKey).Err(); err != nil {
		slog.Error("Не удалось сбросить кэш метрик", "error", err)
	}
}

package models

import "gorm.io/gorm"

// Ключи настроек панели. Инвестиции и прибыль вводятся вручную
// и в метриках участвуют как внешние входы, а не вычисляются.
const (
	SettingInvestment = "investment"
	SettingProfit     = "profit"
)

// Setting — пара ключ/значение для ручных входов панели метрик.
// Раньше фронтенд держал эти значения в localStorage; теперь они
// переживают смену браузера.
type Setting struct {
	gorm.Model
	Key   string `gorm:"column:key;uniqueIndex" json:"key"`
	Value int64  `gorm:"column:value" json:"value"`
}

func (Setting) TableName() string { return "settings" }

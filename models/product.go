package models

import (
	"time"

	"gorm.io/gorm"
)

// Product — товар внутри заказа. Рассрочкой покрывается
// FullAmount − PrePaidAmount; сама предоплата строкой графика не является.
// После построения графика суммы и даты товара менять нельзя.
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrderID uint   `gorm:"column:order_id;index" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID" json:"-"`
	Name    string `gorm:"column:name" json:"product_name"`

	FullAmount    Money `gorm:"column:full_amount" json:"product_full_amount"`
	PrePaidAmount Money `gorm:"column:pre_paid_amount" json:"product_pre_paid_amount"`
	ProfitAmount  Money `gorm:"column:profit_amount" json:"product_profit_amount"`

	PeriodStartDate time.Time `gorm:"column:period_start_date" json:"product_payment_period_start_date"`
	PeriodEndDate   time.Time `gorm:"column:period_end_date" json:"product_payment_period_end_date"`

	Installments []Installment `gorm:"foreignKey:ProductID" json:"payment_graphics"`
}

func (Product) TableName() string { return "products" }

// HasSchedule сообщает, построен ли для товара график платежей.
func (p *Product) HasSchedule() bool {
	return len(p.Installments) > 0
}

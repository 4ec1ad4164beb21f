package models

import (
	"time"

	"gorm.io/gorm"
)

// InstallmentStatusFullPaid — значение payment_status, которое фронтенд
// использует для подсветки полностью оплаченных строк.
const InstallmentStatusFullPaid = "full-paid"

// Installment — одна строка графика платежей ("платёжной графики") товара.
// PaidAmount меняется только применением оплаты и не превышает Amount;
// CompletedDate заполнена тогда и только тогда, когда строка оплачена
// полностью.
//
// Имя JSON-поля payment_schedualed_pay_day сохранено как есть:
// так его читает фронтенд.
type Installment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ProductID uint `gorm:"column:product_id;index;uniqueIndex:idx_installments_product_seq" json:"product_id"`

	// Порядковый номер строки в графике, 1..N, уникален в пределах товара.
	Seq int `gorm:"column:seq;uniqueIndex:idx_installments_product_seq" json:"payment_index"`

	Amount     Money `gorm:"column:amount" json:"payment_amount"`
	PaidAmount Money `gorm:"column:paid_amount" json:"payment_paid_amount"`

	ScheduledPayDay time.Time  `gorm:"column:scheduled_pay_day" json:"payment_schedualed_pay_day"`
	CompletedDate   *time.Time `gorm:"column:completed_date" json:"payment_completed_date,omitempty"`

	Status string `gorm:"column:status" json:"payment_status"`
}

func (Installment) TableName() string { return "installments" }

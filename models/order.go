package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus — статус заказа. Переходы между статусами выполняются только
// явными запросами фронтенда; оплата всех платежей сама по себе статус
// не меняет.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusProcess   OrderStatus = "process"
	OrderStatusFinished  OrderStatus = "finished"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order описывает продажу. Клиент — слабая ссылка на внешний справочник:
// заказ хранит только его ID и никогда не меняет данные клиента.
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GeneratedID   string      `gorm:"column:generated_id;uniqueIndex" json:"order_generated_id"`
	AssignedIndex int         `gorm:"column:assigned_index" json:"order_assigned_index"`
	CreatedDate   time.Time   `gorm:"column:created_date" json:"order_created_date"`
	Status        OrderStatus `gorm:"column:status;default:pending" json:"order_status"`

	ClientID *uint   `gorm:"column:client_id;index" json:"client_id,omitempty"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"order_assigned_client,omitempty"`

	Products []Product `gorm:"foreignKey:OrderID" json:"order_products"`
}

func (Order) TableName() string { return "orders" }

package models

import (
	"time"

	"gorm.io/gorm"
)

// Client — запись справочника клиентов. Леджер ссылается на клиента
// только по ID и его данные не трогает.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name              string `gorm:"column:name" json:"client_name"`
	Surname           string `gorm:"column:surname" json:"client_surname"`
	PhoneNumber       string `gorm:"column:phone_number" json:"client_phone_number"`
	PreferredLanguage string `gorm:"column:preferred_language" json:"client_prefered_language"`
}

func (Client) TableName() string { return "clients" }

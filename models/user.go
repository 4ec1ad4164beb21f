package models

import "gorm.io/gorm"

// User — учётная запись сотрудника. Пароль хранится только как bcrypt-хэш.
type User struct {
	gorm.Model
	Login        string `gorm:"column:login;uniqueIndex" json:"login"`
	PasswordHash string `gorm:"column:password_hash" json:"-"`
}

func (User) TableName() string { return "users" }

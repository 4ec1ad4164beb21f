package models

import "gorm.io/gorm"

// Comment — заметка менеджера на главной странице.
type Comment struct {
	gorm.Model
	Body string `gorm:"column:body" json:"comment_body"`
}

func (Comment) TableName() string { return "comments" }

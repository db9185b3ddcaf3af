package models

import (
	"time"
)

// Menu represents the menus table
type Menu struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	Slug       string     `json:"slug" gorm:"column:slug;size:64;not null;uniqueIndex"`
	TitleRu    string     `json:"title_ru" gorm:"column:title_ru;size:200;not null"`
	TitleKz    string     `json:"title_kz" gorm:"column:title_kz;size:200;not null"`
	TitleEn    string     `json:"title_en" gorm:"column:title_en;size:200;not null"`
	Image      *string    `json:"image" gorm:"column:image;size:500;default:''"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Categories []Category `json:"-" gorm:"foreignKey:MenuID"`
}

// TableName sets the insert table name for Menu
func (Menu) TableName() string {
	return "menus"
}

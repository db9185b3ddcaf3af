package models

import (
	"time"
)

// Category represents the categories table; every category belongs to a menu
type Category struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	MenuID    uint      `json:"menu_id" gorm:"column:menu_id;not null;index"`
	Slug      string    `json:"slug" gorm:"column:slug;size:64;not null;uniqueIndex"`
	NameRu    string    `json:"name_ru" gorm:"column:name_ru;size:200;not null"`
	NameKz    string    `json:"name_kz" gorm:"column:name_kz;size:200;not null"`
	NameEn    string    `json:"name_en" gorm:"column:name_en;size:200;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Dishes    []Dish    `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName sets the insert table name for Category
func (Category) TableName() string {
	return "categories"
}

package models

import (
	"time"
)

// Dish represents the dishes table. Price is kept in minor currency units.
type Dish struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CategoryID uint      `json:"category_id" gorm:"column:category_id;not null;index"`
	Slug       string    `json:"slug" gorm:"column:slug;size:128;not null;uniqueIndex"`
	TitleRu    string    `json:"title_ru" gorm:"column:title_ru;size:200;not null"`
	TitleKz    string    `json:"title_kz" gorm:"column:title_kz;size:200;not null"`
	TitleEn    string    `json:"title_en" gorm:"column:title_en;size:200;not null"`
	Price      int       `json:"price" gorm:"column:price;not null;default:0"`
	IngRu      *string   `json:"ing_ru" gorm:"column:ing_ru;type:text;default:''"`
	IngKz      *string   `json:"ing_kz" gorm:"column:ing_kz;type:text;default:''"`
	IngEn      *string   `json:"ing_en" gorm:"column:ing_en;type:text;default:''"`
	Image      *string   `json:"image" gorm:"column:image;size:500;default:''"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Dish
func (Dish) TableName() string {
	return "dishes"
}

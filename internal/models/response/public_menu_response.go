package response

import "menu-cms-svc/internal/models"

// PublicMenu is the flat menu record handed to the public page
type PublicMenu struct {
	ID      uint   `json:"id" example:"1"`
	Slug    string `json:"slug" example:"main"`
	TitleRu string `json:"title_ru" example:"Основное меню"`
	TitleKz string `json:"title_kz" example:"Негізгі мәзір"`
	TitleEn string `json:"title_en" example:"Main menu"`
	Image   string `json:"image" example:"/static/uploads/main.jpg"`
}

// PublicCategory is the flat category record handed to the public page
type PublicCategory struct {
	ID     uint   `json:"id" example:"1"`
	MenuID uint   `json:"menu_id" example:"1"`
	Slug   string `json:"slug" example:"salads"`
	NameRu string `json:"name_ru" example:"Салаты"`
	NameKz string `json:"name_kz" example:"Салаттар"`
	NameEn string `json:"name_en" example:"Salads"`
}

// PublicDish is the flat dish record handed to the public page
type PublicDish struct {
	ID         uint   `json:"id" example:"1"`
	CategoryID uint   `json:"category_id" example:"1"`
	Slug       string `json:"slug" example:"greek-salad"`
	TitleRu    string `json:"title_ru" example:"Греческий салат"`
	TitleKz    string `json:"title_kz" example:"Грек салаты"`
	TitleEn    string `json:"title_en" example:"Greek salad"`
	Price      int    `json:"price" example:"4590"`
	IngRu      string `json:"ing_ru" example:"помидоры, огурцы, фета, оливки"`
	IngKz      string `json:"ing_kz" example:"қызанақ, қияр, фета, зәйтүн"`
	IngEn      string `json:"ing_en" example:"tomatoes, cucumbers, feta, olives"`
	Image      string `json:"image" example:""`
}

// PublicMenuResponse is everything the public menu page needs
type PublicMenuResponse struct {
	Menus      []PublicMenu     `json:"menus"`
	Categories []PublicCategory `json:"categories"`
	Items      []PublicDish     `json:"items"`
	Phone      string           `json:"phone" example:"+7 (777) 123-45-67"`
	Theme      *models.Settings `json:"theme"`
	Lang       string           `json:"lang" example:"ru"`
}

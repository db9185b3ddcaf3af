package models

import (
	"time"
)

// SettingsID is the primary key of the only settings row
const SettingsID uint = 1

// Default contact phone and theme tokens
const (
	DefaultPhone     = "+7 (777) 123-45-67"
	DefaultBg        = "#121015"
	DefaultCard      = "#181820"
	DefaultMuted     = "#9aa3b2"
	DefaultText      = "#f5f7fb"
	DefaultBrand     = "#ffbd2f"
	DefaultAccent    = "#4fd1c5"
	DefaultBorder    = "rgba(255,255,255,.08)"
	DefaultBrandFont = "system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Cantarell"
)

// Settings represents the settings table: contact phone and theme tokens
type Settings struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Phone     *string   `json:"phone" gorm:"column:phone;size:64;default:''"`
	Bg        *string   `json:"bg" gorm:"column:bg;size:64"`
	Card      *string   `json:"card" gorm:"column:card;size:64"`
	Muted     *string   `json:"muted" gorm:"column:muted;size:64"`
	Text      *string   `json:"text" gorm:"column:text;size:64"`
	Brand     *string   `json:"brand" gorm:"column:brand;size:64"`
	Accent    *string   `json:"accent" gorm:"column:accent;size:64"`
	Border    *string   `json:"border" gorm:"column:border;size:64"`
	BrandFont *string   `json:"brand_font" gorm:"column:brand_font;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Settings
func (Settings) TableName() string {
	return "settings"
}

// ThemeField pairs a form/column name with its default and a pointer to the value
type ThemeField struct {
	Name    string
	Default string
	Value   **string
}

// ThemeFields returns the seven theme tokens plus the font, in display order
func (s *Settings) ThemeFields() []ThemeField {
	return []ThemeField{
		{Name: "bg", Default: DefaultBg, Value: &s.Bg},
		{Name: "card", Default: DefaultCard, Value: &s.Card},
		{Name: "muted", Default: DefaultMuted, Value: &s.Muted},
		{Name: "text", Default: DefaultText, Value: &s.Text},
		{Name: "brand", Default: DefaultBrand, Value: &s.Brand},
		{Name: "accent", Default: DefaultAccent, Value: &s.Accent},
		{Name: "border", Default: DefaultBorder, Value: &s.Border},
		{Name: "brand_font", Default: DefaultBrandFont, Value: &s.BrandFont},
	}
}

// NewDefaultSettings returns the settings row created on first access
func NewDefaultSettings() *Settings {
	s := &Settings{ID: SettingsID, Phone: StringPtr(DefaultPhone)}
	for _, f := range s.ThemeFields() {
		*f.Value = StringPtr(f.Default)
	}
	return s
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}

// StringValue returns the pointed-to string, or "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

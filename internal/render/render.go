// Package render turns handler page data into HTTP responses, either as
// html/template pages or as the JSON envelope used by pkg/utils.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/session"
	"menu-cms-svc/pkg/utils"
)

// Page template names
const (
	PagePublic       = "public.html"
	PageLogin        = "login.html"
	PageDashboard    = "dashboard.html"
	PageMenus        = "menus.html"
	PageMenuEdit     = "menu_edit.html"
	PageCategories   = "categories.html"
	PageCategoryEdit = "category_edit.html"
	PageDishes       = "dishes.html"
	PageDishEdit     = "dish_edit.html"
	PageError        = "error.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is what every handler hands to the renderer
type Page struct {
	Name    string          `json:"page"`
	Title   string          `json:"title,omitempty"`
	Admin   bool            `json:"admin"`
	Flashes []session.Flash `json:"flashes"`
	Data    interface{}     `json:"data,omitempty"`
}

// Renderer writes pages and error responses
type Renderer interface {
	Render(c *gin.Context, status int, page Page)
	Error(c *gin.Context, status int, message string, err error)
}

// New returns the renderer for format ("html" or "json")
func New(format string) Renderer {
	if format == "json" {
		return JSONRenderer{}
	}
	return HTMLRenderer{}
}

// JSONRenderer writes the page as the data of a utils.APIResponse
type JSONRenderer struct{}

func (JSONRenderer) Render(c *gin.Context, status int, page Page) {
	if page.Flashes == nil {
		page.Flashes = []session.Flash{}
	}
	utils.JSONResponse(c, status, page.Title, page)
}

func (JSONRenderer) Error(c *gin.Context, status int, message string, err error) {
	utils.ErrorResponse(c, status, message, err)
}

// HTMLRenderer executes the template named after the page. The engine must
// carry the templates from Templates.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(c *gin.Context, status int, page Page) {
	c.HTML(status, page.Name, page)
}

func (HTMLRenderer) Error(c *gin.Context, status int, message string, err error) {
	page := Page{Name: PageError, Title: message}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		page.Data = err.Error()
	}
	c.HTML(status, PageError, page)
	c.Abort()
}

// Templates parses the page templates, from glob when set, else the embedded set
func Templates(glob string) (*template.Template, error) {
	t := template.New("pages").Funcs(FuncMap())
	var err error
	if glob != "" {
		t, err = t.ParseGlob(glob)
	} else {
		t, err = t.ParseFS(templatesFS, "templates/*.html")
	}
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// FuncMap holds the helpers available to page templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"pick":  Pick,
		"val":   models.StringValue,
		"price": FormatPrice,
		// css marks admin-entered theme tokens as trusted style values
		"css": func(s *string) template.CSS {
			return template.CSS(models.StringValue(s))
		},
	}
}

// Pick returns the text for lang, falling back to Russian
func Pick(lang, ru, kz, en string) string {
	switch lang {
	case "kz":
		if kz != "" {
			return kz
		}
	case "en":
		if en != "" {
			return en
		}
	}
	return ru
}

// FormatPrice groups thousands with a space: 12500 -> "12 500"
func FormatPrice(price int) string {
	s := strconv.Itoa(price)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Package seed loads starter catalog data from YAML and writes it into an
// empty database.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/pkg/logger"
)

//go:embed default.yaml
var defaultData []byte

// Data is a seed file: the contact phone and a tree of menus
type Data struct {
	Phone string `yaml:"phone"`
	Menus []Menu `yaml:"menus"`
}

// Menu is a seeded menu with its categories
type Menu struct {
	Slug       string     `yaml:"slug"`
	TitleRu    string     `yaml:"title_ru"`
	TitleKz    string     `yaml:"title_kz"`
	TitleEn    string     `yaml:"title_en"`
	Image      string     `yaml:"image"`
	Categories []Category `yaml:"categories"`
}

// Category is a seeded category with its dishes
type Category struct {
	Slug   string `yaml:"slug"`
	NameRu string `yaml:"name_ru"`
	NameKz string `yaml:"name_kz"`
	NameEn string `yaml:"name_en"`
	Dishes []Dish `yaml:"dishes"`
}

// Dish is a seeded dish
type Dish struct {
	Slug    string `yaml:"slug"`
	TitleRu string `yaml:"title_ru"`
	TitleKz string `yaml:"title_kz"`
	TitleEn string `yaml:"title_en"`
	Price   int    `yaml:"price"`
	IngRu   string `yaml:"ing_ru"`
	IngKz   string `yaml:"ing_kz"`
	IngEn   string `yaml:"ing_en"`
	Image   string `yaml:"image"`
}

// Default returns the bundled starter catalog
func Default() (*Data, error) {
	return Parse(strings.NewReader(string(defaultData)))
}

// LoadFile reads a seed file from disk
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates seed YAML
func Parse(r io.Reader) (*Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) validate() error {
	slugs := map[string]bool{}
	unique := func(kind, slug string) error {
		key := kind + ":" + slug
		if slugs[key] {
			return fmt.Errorf("seed: duplicate %s slug %q", kind, slug)
		}
		slugs[key] = true
		return nil
	}

	for _, m := range d.Menus {
		if m.Slug == "" || m.TitleRu == "" || m.TitleKz == "" || m.TitleEn == "" {
			return fmt.Errorf("seed: menu %q is missing required fields", m.Slug)
		}
		if err := unique("menu", m.Slug); err != nil {
			return err
		}
		for _, c := range m.Categories {
			if c.Slug == "" || c.NameRu == "" || c.NameKz == "" || c.NameEn == "" {
				return fmt.Errorf("seed: category %q is missing required fields", c.Slug)
			}
			if err := unique("category", c.Slug); err != nil {
				return err
			}
			for _, dish := range c.Dishes {
				if dish.Slug == "" || dish.TitleRu == "" || dish.TitleKz == "" || dish.TitleEn == "" {
					return fmt.Errorf("seed: dish %q is missing required fields", dish.Slug)
				}
				if dish.Price < 0 {
					return fmt.Errorf("seed: dish %q has a negative price", dish.Slug)
				}
				if err := unique("dish", dish.Slug); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Result counts what Apply wrote
type Result struct {
	SettingsCreated bool
	Menus           int
	Categories      int
	Dishes          int
}

// Apply creates the settings row if missing and, when no menu exists yet,
// inserts the whole catalog in one transaction
func Apply(db *gorm.DB, data *Data, log *logger.Logger) (*Result, error) {
	result := &Result{}

	err := db.Transaction(func(tx *gorm.DB) error {
		settingsRepo := repository.NewSettingsRepository(tx)
		if _, err := settingsRepo.First(); errors.Is(err, repository.ErrNotFound) {
			settings := models.NewDefaultSettings()
			if data.Phone != "" {
				settings.Phone = models.StringPtr(data.Phone)
			}
			if err := settingsRepo.CreateIfAbsent(settings); err != nil {
				return err
			}
			result.SettingsCreated = true
		} else if err != nil {
			return err
		}

		menuRepo := repository.NewMenuRepository(tx)
		existing, err := menuRepo.List()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		categoryRepo := repository.NewCategoryRepository(tx)
		dishRepo := repository.NewDishRepository(tx)
		for _, m := range data.Menus {
			menu := &models.Menu{
				Slug:    m.Slug,
				TitleRu: m.TitleRu,
				TitleKz: m.TitleKz,
				TitleEn: m.TitleEn,
				Image:   models.StringPtr(m.Image),
			}
			if err := menuRepo.Create(menu); err != nil {
				return fmt.Errorf("seed menu %q: %w", m.Slug, err)
			}
			result.Menus++

			for _, c := range m.Categories {
				category := &models.Category{
					MenuID: menu.ID,
					Slug:   c.Slug,
					NameRu: c.NameRu,
					NameKz: c.NameKz,
					NameEn: c.NameEn,
				}
				if err := categoryRepo.Create(category); err != nil {
					return fmt.Errorf("seed category %q: %w", c.Slug, err)
				}
				result.Categories++

				for _, d := range c.Dishes {
					dish := &models.Dish{
						CategoryID: category.ID,
						Slug:       d.Slug,
						TitleRu:    d.TitleRu,
						TitleKz:    d.TitleKz,
						TitleEn:    d.TitleEn,
						Price:      d.Price,
						IngRu:      models.StringPtr(d.IngRu),
						IngKz:      models.StringPtr(d.IngKz),
						IngEn:      models.StringPtr(d.IngEn),
						Image:      models.StringPtr(d.Image),
					}
					if err := dishRepo.Create(dish); err != nil {
						return fmt.Errorf("seed dish %q: %w", d.Slug, err)
					}
					result.Dishes++
				}
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to seed database")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"settings_created": result.SettingsCreated,
		"menus":            result.Menus,
		"categories":       result.Categories,
		"dishes":           result.Dishes,
	}).Info("Database seeded")

	return result, nil
}

package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"menu-cms-svc/internal/models/response"
)

// ContentType is the MIME type of the produced workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names, in workbook order
const (
	SheetMenus      = "Menus"
	SheetCategories = "Categories"
	SheetDishes     = "Dishes"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// Workbook writes menus, categories and dishes into one sheet each and
// returns the xlsx bytes with a timestamped file name
func Workbook(view *response.PublicMenuResponse, now time.Time) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []sheet{
		{name: SheetMenus, headers: []string{"ID", "Slug", "Title RU", "Title KZ", "Title EN", "Image"}},
		{name: SheetCategories, headers: []string{"ID", "Menu ID", "Slug", "Name RU", "Name KZ", "Name EN"}},
		{name: SheetDishes, headers: []string{"ID", "Category ID", "Slug", "Title RU", "Title KZ", "Title EN", "Price", "Ingredients RU", "Ingredients KZ", "Ingredients EN", "Image"}},
	}
	for _, m := range view.Menus {
		sheets[0].rows = append(sheets[0].rows, []interface{}{m.ID, m.Slug, m.TitleRu, m.TitleKz, m.TitleEn, m.Image})
	}
	for _, c := range view.Categories {
		sheets[1].rows = append(sheets[1].rows, []interface{}{c.ID, c.MenuID, c.Slug, c.NameRu, c.NameKz, c.NameEn})
	}
	for _, d := range view.Items {
		sheets[2].rows = append(sheets[2].rows, []interface{}{d.ID, d.CategoryID, d.Slug, d.TitleRu, d.TitleKz, d.TitleEn, d.Price, d.IngRu, d.IngKz, d.IngEn, d.Image})
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return nil, "", fmt.Errorf("failed to create sheet: %w", err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return nil, "", err
		}
	}

	// Delete default Sheet1
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	filename := fmt.Sprintf("menu_export_%s.xlsx", now.Format("20060102_150405"))

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	header := make([]interface{}, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", s.name, err)
	}

	last, _ := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", s.name, err)
	}

	for i, row := range s.rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := row
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.name, i+1, err)
		}
	}

	for i := 1; i <= len(s.headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		if err := f.SetColWidth(s.name, col, col, 18); err != nil {
			return fmt.Errorf("failed to size %s columns: %w", s.name, err)
		}
	}
	return nil
}

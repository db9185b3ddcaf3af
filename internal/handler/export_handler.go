package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"menu-cms-svc/internal/export"
	"menu-cms-svc/internal/i18n"
	"menu-cms-svc/internal/service"
)

// ExportHandler streams the catalog as a spreadsheet
type ExportHandler struct {
	pages
	catalogService service.CatalogService
}

// NewExportHandler creates a new export handler
func NewExportHandler(catalogService service.CatalogService, p pages) *ExportHandler {
	return &ExportHandler{
		pages:          p,
		catalogService: catalogService,
	}
}

// ExportWorkbook handles GET /admin/export.xlsx
// @Summary Export catalog to Excel
// @Description Menus, Categories and Dishes sheets, one row per record
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel workbook"
// @Failure 500 {object} utils.APIResponse
// @Router /admin/export.xlsx [get]
func (h *ExportHandler) ExportWorkbook(c *gin.Context) {
	view, err := h.catalogService.PublicMenu(i18n.Default())
	if err != nil {
		h.fail(c, err, "Failed to load catalog for export")
		return
	}

	data, filename, err := export.Workbook(view, time.Now())
	if err != nil {
		h.fail(c, err, "Failed to build export workbook")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"file":       filename,
		"menus":      len(view.Menus),
		"categories": len(view.Categories),
		"dishes":     len(view.Items),
	}).Info("Catalog exported")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

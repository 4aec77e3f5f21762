package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Recipes"

var exportHeader = []interface{}{
	"ID", "Name", "Tag", "Description", "Mood", "Time", "Serves", "Image", "Ingredients", "Steps", "Built-in",
}

// ExportRecipes streams the kitchen's merged catalog as an xlsx workbook.
func (h *RecipeHandler) ExportRecipes(c *gin.Context) {
	result := currentKitchen(c, h.kitchens).Recipes.List(c.Request.Context())

	f, err := buildWorkbook(result.Recipes)
	if err != nil {
		log.Printf("Failed to build export workbook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export recipes"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="ghibli-kitchen-recipes.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("Failed to write export workbook: %v", err)
	}
}

func buildWorkbook(recipes []model.Recipe) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range recipes {
		row := []interface{}{
			r.ID, r.Name, r.Tag, r.Description, r.Mood, r.Time, r.Serves,
			exportImage(r.Image),
			strings.Join(r.Ingredients, "\n"),
			strings.Join(r.Steps, "\n"),
			r.IsDefault,
		}
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "K", 24); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// exportImage keeps remote URLs; uploaded images don't fit in a cell.
func exportImage(image string) string {
	if strings.HasPrefix(image, "data:") {
		return "(uploaded image)"
	}
	return image
}

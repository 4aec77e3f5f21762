package api

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ghibli-kitchen/backend/internal/model"
	"github.com/pageza/ghibli-kitchen/backend/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	// imageSrc lets uploaded data:image URLs through html/template's URL
	// filter. Anything else that isn't http(s) is dropped.
	"imageSrc": func(s string) template.URL {
		if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
			return template.URL(s)
		}
		return ""
	},
}

// PageTemplates parses the embedded HTML templates.
func PageTemplates() *template.Template {
	return template.Must(template.New("").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html"))
}

type pageRoot struct {
	Dark       bool
	Font       string
	ColorTheme string
}

type pageData struct {
	Title   string
	Root    pageRoot
	Palette model.Palette
	Recipes []model.Recipe
	Count   int
	Corrupt bool
	Recipe  *model.Recipe
}

// PageHandler renders the catalog as server-side HTML.
type PageHandler struct {
	kitchens *service.KitchenRegistry
}

func NewPageHandler(kitchens *service.KitchenRegistry) *PageHandler {
	return &PageHandler{kitchens: kitchens}
}

func (h *PageHandler) RegisterRoutes(router *gin.Engine, kitchenMW gin.HandlerFunc) {
	router.SetHTMLTemplate(PageTemplates())
	router.GET("/", kitchenMW, h.Index)
	router.GET("/recipes/:id", kitchenMW, h.Recipe)
}

func (h *PageHandler) Index(c *gin.Context) {
	kitchen := currentKitchen(c, h.kitchens)
	result := kitchen.Recipes.List(c.Request.Context())

	data := newPageData(kitchen, "Ghibli Kitchen")
	data.Recipes = result.Recipes
	data.Count = len(result.Recipes)
	data.Corrupt = result.Corrupt
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *PageHandler) Recipe(c *gin.Context) {
	kitchen := currentKitchen(c, h.kitchens)
	recipe, err := kitchen.Recipes.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.HTML(http.StatusNotFound, "not_found.html", newPageData(kitchen, "Recipe not found"))
		return
	}
	if err != nil {
		log.Printf("Failed to load recipe page: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	data := newPageData(kitchen, recipe.Name+" | Ghibli Kitchen")
	data.Recipe = &recipe
	c.HTML(http.StatusOK, "recipe.html", data)
}

func newPageData(k *service.Kitchen, title string) pageData {
	attrs := k.Root.Attributes()
	return pageData{
		Title: title,
		Root: pageRoot{
			Dark:       k.Root.Class() == "dark",
			Font:       attrs[service.AttrFont],
			ColorTheme: attrs[service.AttrColorTheme],
		},
		Palette: activePalette(k.Preferences.Preferences()),
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nick07092003/FitAI/internal/catalog"
	"github.com/Nick07092003/FitAI/internal/model"
)

// Handler — зависимости HTTP-слоя: каталог упражнений, конвейер моделей
// и хранилище сессий. Каталог и конвейер после старта только читаются.
// Pipeline может быть nil — предсказание тогда отвечает 503, оценка работает.
type Handler struct {
	Catalog  []catalog.Exercise
	Pipeline *model.Pipeline
	Sessions *SessionStore
}

func New(cat []catalog.Exercise, p *model.Pipeline) *Handler {
	return &Handler{Catalog: cat, Pipeline: p, Sessions: NewSessionStore()}
}

// pageData — общие данные главной страницы: словарь частей тела и
// сохранённая оценка текущей сессии, если она была.
func (h *Handler) pageData(c *fiber.Ctx) fiber.Map {
	data := fiber.Map{
		"Title":     "FitAI",
		"BodyParts": h.Pipeline.BodyParts(),
		"ModelsOK":  h.Pipeline != nil,
		"CatalogOK": len(h.Catalog) > 0,
	}
	if res, ok := h.Sessions.Get(c.Cookies(sessionCookie)); ok {
		data["Fitness"] = res
	}
	return data
}

// Home — главная страница с двумя формами.
func (h *Handler) Home(c *fiber.Ctx) error {
	return c.Render("home", h.pageData(c))
}

// Health — живость и состояние подсистем.
func (h *Handler) Health(c *fiber.Ctx) error {
	return jsonOK(c, fiber.Map{
		"catalog": len(h.Catalog) > 0,
		"models":  h.Pipeline != nil,
	})
}

package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nick07092003/FitAI/internal/model"
)

// PredictForm — форма предсказания упражнения по части тела.
// Сохранённая оценка сессии остаётся на странице рядом с предсказанием.
func (h *Handler) PredictForm(c *fiber.Ctx) error {
	bodyPart := strings.TrimSpace(c.FormValue("body_part"))
	data := h.pageData(c)

	pred, err := h.Pipeline.PredictExercise(bodyPart)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrModelUnavailable):
			data["PredictError"] = "Модели не загружены, предсказание недоступно"
		case errors.Is(err, model.ErrUnknownCategory):
			data["PredictError"] = fmt.Sprintf("Часть тела %q не знакома моделям", bodyPart)
		default:
			log.Printf("❌ predict: %v", err)
			data["PredictError"] = "Не удалось получить предсказание"
		}
		return c.Render("home", data)
	}

	data["Prediction"] = pred
	data["PredictedFor"] = bodyPart
	return c.Render("home", data)
}

// APIPredict — JSON-вариант операции predictExercise.
func (h *Handler) APIPredict(c *fiber.Ctx) error {
	var req struct {
		BodyPart string `json:"body_part" form:"body_part"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Неверные данные формы", err)
	}
	bodyPart := strings.TrimSpace(req.BodyPart)

	pred, err := h.Pipeline.PredictExercise(bodyPart)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrModelUnavailable):
			return jsonError(c, fiber.StatusServiceUnavailable, "Модели недоступны", err)
		case errors.Is(err, model.ErrUnknownCategory):
			return jsonError(c, fiber.StatusUnprocessableEntity, "Неизвестная категория", err)
		default:
			log.Printf("❌ predict: %v", err)
			return jsonError(c, fiber.StatusInternalServerError, "", err)
		}
	}

	return jsonOK(c, fiber.Map{
		"body_part":  bodyPart,
		"prediction": pred,
	})
}

// BodyParts — словарь частей тела для выпадающего списка.
func (h *Handler) BodyParts(c *fiber.Ctx) error {
	if h.Pipeline == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Модели недоступны", nil)
	}
	return jsonOK(c, fiber.Map{"body_parts": h.Pipeline.BodyParts()})
}

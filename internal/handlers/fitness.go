package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Nick07092003/FitAI/internal/fitness"
)

// FitnessForm — биометрическая форма: оценка + подборка упражнений,
// результат сохраняется в сессии и рендерится на главной странице.
func (h *Handler) FitnessForm(c *fiber.Ctx) error {
	var in fitness.BiometricInput
	if err := c.BodyParser(&in); err != nil {
		data := h.pageData(c)
		data["FitnessError"] = "Неверные данные формы"
		return c.Render("home", data)
	}

	res, err := fitness.GeneratePlan(in, h.Catalog)
	if err != nil {
		data := h.pageData(c)
		data["FitnessError"] = "Проверьте данные: вес, рост и возраст должны быть больше нуля, пол — male или female"
		return c.Render("home", data)
	}

	h.Sessions.Put(h.sessionID(c), res)

	data := h.pageData(c)
	data["Fitness"] = res
	return c.Render("home", data)
}

// APIFitness — JSON-вариант операции generateFitnessPlan.
func (h *Handler) APIFitness(c *fiber.Ctx) error {
	var in fitness.BiometricInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Неверные данные формы", err)
	}

	res, err := fitness.GeneratePlan(in, h.Catalog)
	if err != nil {
		if errors.Is(err, fitness.ErrInvalidInput) {
			return jsonError(c, fiber.StatusBadRequest, "Некорректные биометрические данные", err)
		}
		log.Printf("❌ generate plan: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "", err)
	}

	return jsonOK(c, fiber.Map{
		"assessment": res.Assessment,
		"exercises":  res.Exercises,
	})
}

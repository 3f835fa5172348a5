package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var problemBaseURL string

// SetProblemBaseURL задаёт базовый URL для поля type Problem Details.
// Пример: https://fitai.dev/problem
func SetProblemBaseURL(base string) {
	problemBaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// jsonError — единый ответ об ошибке в формате RFC 7807 (application/problem+json)
// Для обратной совместимости добавляет поля success=false и error.
func jsonError(c *fiber.Ctx, status int, publicMsg string, err error) error {
	if err != nil {
		log.Printf("handler error: %v", err)
	}
	if publicMsg == "" {
		publicMsg = fiber.ErrInternalServerError.Message
	}
	pType := problemType(publicMsg, status)
	problem := fiber.Map{
		"type":     pType,
		"title":    publicMsg,
		"status":   status,
		"instance": c.OriginalURL(),
	}
	if err != nil {
		problem["detail"] = err.Error()
	}
	// backward-compat fields
	problem["success"] = false
	problem["error"] = publicMsg

	c.Type("application/problem+json")
	return c.Status(status).JSON(problem)
}

func jsonOK(c *fiber.Ctx, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	c.Type("application/json")
	return c.JSON(payload)
}

// problemType возвращает осмысленный URI для поля "type" Problem Details.
// Базовая схема использует URN, чтобы не зависеть от внешнего домена.
func problemType(title string, status int) string {
	t := strings.ToLower(strings.TrimSpace(title))
	code := ""
	// Частные случаи по тексту сообщения → код
	switch {
	case strings.Contains(t, "неверные данные формы"):
		code = "invalid-form"
	case strings.Contains(t, "биометрич"):
		code = "validation-error"
	case strings.Contains(t, "неизвестная категория") || strings.Contains(t, "часть тела"):
		code = "unknown-category"
	case strings.Contains(t, "модели недоступны") || strings.Contains(t, "модели не загружены"):
		code = "model-unavailable"
	}
	if code == "" {
		// Общее соответствие по HTTP-статусу
		switch status {
		case fiber.StatusBadRequest:
			code = "validation-error"
		case fiber.StatusUnprocessableEntity:
			code = "unknown-category"
		case fiber.StatusNotFound:
			code = "not-found"
		case fiber.StatusServiceUnavailable:
			code = "service-unavailable"
		default:
			code = "internal-error"
		}
	}
	if problemBaseURL != "" && (strings.HasPrefix(problemBaseURL, "http://") || strings.HasPrefix(problemBaseURL, "https://")) {
		return problemBaseURL + "/" + code
	}
	return "urn:fitai:problem:" + code
}

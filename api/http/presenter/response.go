package presenter

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// PrettyJSON writes v as indented JSON.
func PrettyJSON(c *fiber.Ctx, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to encode response")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(status).Send(b)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

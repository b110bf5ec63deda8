package response

import (
	"github.com/gofiber/fiber/v2"
)

// Every api response carries a message field, payload fields ride along
// in the same object. Movie listing routes return bare arrays instead
// and use c.JSON directly.

type ResponseMessageModel struct {
	Message string `json:"message"`
}

func ResponseMessage(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ResponseMessageModel{
		Message: message,
	})
}

func ResponseOK(c *fiber.Ctx, message string) error {
	return ResponseMessage(c, fiber.StatusOK, message)
}

func ResponseCreated(c *fiber.Ctx, message string) error {
	return ResponseMessage(c, fiber.StatusCreated, message)
}

func ResponseWithData(c *fiber.Ctx, statusCode int, message string, dataKey string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
		dataKey:   data,
	})
}

func ResponseError(c *fiber.Ctx, message string, code int) error {
	return ResponseMessage(c, code, message)
}

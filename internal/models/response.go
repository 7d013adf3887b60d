package models

import "github.com/gofiber/fiber/v2"

// Response is the success envelope returned by every endpoint.
type Response struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// ErrorBody is the failure envelope written by the central error handler.
type ErrorBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

// Respond writes the standard success envelope.
func Respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Samvel1-1/Electronics/internal/domain"
)

func failError(c *fiber.Ctx, err error) error {
	return fail(c, statusForError(err), err.Error())
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// statusForError maps the domain error taxonomy to the HTTP surface.
// Conflicts (duplicate category, already-cancelled order) read as 400 here,
// not 409; that is the external contract.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

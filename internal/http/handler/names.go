package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"namesapi/internal/service"
)

type createNameRequest struct {
	Name string `json:"name" form:"name"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationError struct {
	Error string `json:"error"`
}

// ListNames returns every record.
//
// @Summary List names
// @Tags names
// @Produce json
// @Success 200 {array} model.Record
// @Failure 500 {object} errorPayload
// @Router /names [get]
func ListNames(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(items)
	}
}

// CreateName stores a new record. The body may be JSON or urlencoded.
//
// @Summary Create a name
// @Tags names
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body createNameRequest true "name to store"
// @Success 201 {object} messageResponse
// @Failure 400 {object} validationError
// @Failure 500 {object} errorPayload
// @Router /names [post]
func CreateName(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createNameRequest
		// Malformed bodies and unsupported content types read as a missing name.
		if err := c.BodyParser(&req); err != nil {
			return nameRequired(c)
		}

		if _, err := svc.Create(c.UserContext(), req.Name); err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return nameRequired(c)
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: "Saved"})
	}
}

// DeleteName removes a record by ID. Unknown IDs are not an error.
//
// @Summary Delete a name
// @Tags names
// @Produce json
// @Param id path string true "record id"
// @Success 200 {object} messageResponse
// @Failure 500 {object} errorPayload
// @Router /names/{id} [delete]
func DeleteName(svc service.NameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(messageResponse{Message: "Deleted"})
	}
}

func nameRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(validationError{Error: "Name required"})
}

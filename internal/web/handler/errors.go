package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrNilDependency is returned by Init when app, cfg, db or a required service is nil.
var ErrNilDependency = errors.New("app, cfg, db or a required service is nil")

// JSONError answers with the given status and {"error": msg}.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// ServerError logs err and answers with a generic 500.
func ServerError(c *fiber.Ctx, err error, action string) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(action)

	return JSONError(c, fiber.StatusInternalServerError, MsgServerError)
}

// ParseID reads the numeric ":id" route parameter.
func ParseID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}

// ValidationMessage turns a validator error into a message for the client.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MsgInvalidRequest
	}

	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

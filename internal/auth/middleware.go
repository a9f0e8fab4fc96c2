package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

const (
	// LocalsProfile is the fiber.Locals key of the authenticated Profile.
	LocalsProfile = "profile"

	// MsgAccessDenied is the error message of unauthenticated API calls.
	MsgAccessDenied = "Access denied"
)

// RequireAuthenticated creates Fiber middleware that requires a valid session token.
func RequireAuthenticated(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := tokens.Verify(session.Read(c))
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("unauthenticated request")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": MsgAccessDenied})
		}

		c.Locals(LocalsProfile, profile)

		return c.Next()
	}
}

// CurrentProfile returns the profile stored by RequireAuthenticated.
func CurrentProfile(c *fiber.Ctx) (*Profile, bool) {
	profile, ok := c.Locals(LocalsProfile).(*Profile)
	return profile, ok && profile != nil
}

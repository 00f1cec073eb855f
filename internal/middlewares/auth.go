package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/services"
)

const userLocalKey = "user"

// Auth validates the bearer credential through the access gate and stashes
// the resolved user projection for the handler. Every interview route runs
// behind this; handlers assume the user is present.
func Auth(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))

		user, err := authService.ResolveUser(c.Context(), token)
		if err != nil {
			// A store outage is not the caller's fault; do not report it
			// as a credential failure.
			if apperrors.Is(err, apperrors.ErrStoreUnavailable) {
				return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
					Success: false,
					Message: "An error occured when trying to authenticate the user",
					Data:    nil,
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Success: false,
				Message: "Unauthorized",
				Data:    nil,
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// UserFromCtx returns the projection stored by Auth.
func UserFromCtx(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid request payload",
			Data:    nil,
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Email and password are required",
			Data:    nil,
		})
	}

	if err := h.authService.Register(c.Context(), &req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Success: false,
			Message: "An error occured when trying to register the user",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    fiber.Map{},
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid request payload",
			Data:    nil,
		})
	}

	token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCredential) || apperrors.Is(err, apperrors.ErrUnknownUser) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Success: false,
				Message: "Invalid email or password",
				Data:    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Success: false,
			Message: "An error occured when trying to log in",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "Logged in successfully",
		Data:    models.LoginResponse{Token: token},
	})
}

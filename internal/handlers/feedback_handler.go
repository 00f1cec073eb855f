package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/middlewares"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/services"
)

type FeedbackHandler struct {
	interviewService services.InterviewService
}

func NewFeedbackHandler(interviewService services.InterviewService) *FeedbackHandler {
	return &FeedbackHandler{interviewService: interviewService}
}

// HandleGetFeedback handles GET /user/questions/:role/getFeedback and
// GET /user/questions/:role/:id/getFeedback
func (h *FeedbackHandler) HandleGetFeedback(c *fiber.Ctx) error {
	user := middlewares.UserFromCtx(c)
	role := utils.CopyString(c.Params("role"))

	attemptID, err := parseOptionalID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid interview ID",
			Data:    nil,
		})
	}

	feedback, rating, err := h.interviewService.GetFeedback(c.Context(), user, role, attemptID)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrNoInterviews):
			return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
				Success: false,
				Message: "No interviews found",
				Data:    nil,
			})
		case apperrors.Is(err, apperrors.ErrPending):
			return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
				Success: false,
				Message: "Feedback is being processed",
				Data:    nil,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
				Success: false,
				Message: "An error occured when trying to fetch the feedback",
				Data:    nil,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "Interview feedback",
		Data: models.FeedbackData{
			Role:     role,
			Feedback: feedback,
			Rating:   rating,
		},
	})
}

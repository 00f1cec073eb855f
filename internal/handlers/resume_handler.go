package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/middlewares"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/services"
)

type ResumeHandler struct {
	interviewService services.InterviewService
	maxFileSize      int64
}

func NewResumeHandler(interviewService services.InterviewService, maxFileSize int64) *ResumeHandler {
	return &ResumeHandler{
		interviewService: interviewService,
		maxFileSize:      maxFileSize,
	}
}

// HandleUploadResume handles POST /user/resume/:role
//
// The response never reflects the queue publish outcome: the attempt is
// durable once the store write succeeds, so the client always gets its
// acknowledgment even with the broker down.
func (h *ResumeHandler) HandleUploadResume(c *fiber.Ctx) error {
	user := middlewares.UserFromCtx(c)
	// Params values alias fiber's reusable request buffer; this one is
	// retained past the request lifetime, so it must be copied.
	role := utils.CopyString(c.Params("role"))

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "No resume was attached",
			Data:    nil,
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: fmt.Sprintf("Resume too large. Max size: %d bytes", h.maxFileSize),
			Data:    nil,
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Success: false,
			Message: "An error occured when trying to upload the resume",
			Data:    nil,
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Success: false,
			Message: "An error occured when trying to upload the resume",
			Data:    nil,
		})
	}

	if _, err := h.interviewService.UploadResume(c.Context(), user, role, data, file.Filename); err != nil {
		// A file that fails the PDF check is the client's problem, not ours.
		if apperrors.Is(err, apperrors.ErrInvalidResume) {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Success: false,
				Message: "Resume must be a valid PDF file",
				Data:    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Success: false,
			Message: "An error occured when trying to upload the resume",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "Resume uploaded succesfully",
		Data:    fiber.Map{},
	})
}

// HandleGetResume handles GET /user/resume/:role and GET /user/resume/:role/:id
func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	user := middlewares.UserFromCtx(c)
	role := c.Params("role")

	attemptID, err := parseOptionalID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid interview ID",
			Data:    nil,
		})
	}

	attempt, err := h.interviewService.SelectAttempt(user, role, attemptID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoInterviews) {
			return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
				Success: false,
				Message: "No interviews found",
				Data:    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Success: false,
			Message: "An error occured when trying to fetch the resume",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "User's resume",
		Data: models.AttemptData{
			Role:             attempt.Role,
			ID:               attempt.ID,
			ResumeName:       attempt.ResumeName,
			Time:             attempt.CreatedAt.Format(time.RFC3339),
			ResumeProcessed:  attempt.ResumeProcessed,
			QuestionCount:    len(attempt.Questions),
			FeedbackReceived: attempt.Feedback != nil,
		},
	})
}

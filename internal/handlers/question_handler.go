package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/middlewares"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/services"
)

type QuestionHandler struct {
	interviewService services.InterviewService
}

func NewQuestionHandler(interviewService services.InterviewService) *QuestionHandler {
	return &QuestionHandler{interviewService: interviewService}
}

// HandleGetQuestions handles GET /user/questions/:role and
// GET /user/questions/:role/:id
//
// A pending attempt answers 404 with a fixed message; the client polls
// until it flips to 200.
func (h *QuestionHandler) HandleGetQuestions(c *fiber.Ctx) error {
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

	questions, err := h.interviewService.GetQuestions(c.Context(), user, role, attemptID)
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
				Message: "Questions are being processed",
				Data:    nil,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
				Success: false,
				Message: "An error occured when trying to fetch the questions",
				Data:    nil,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "Interview questions",
		Data: models.QuestionsData{
			Role:      role,
			Questions: questions,
		},
	})
}

// HandleSubmitAnswer handles POST /user/:role/:id/:index
func (h *QuestionHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	user := middlewares.UserFromCtx(c)
	role := c.Params("role")

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid interview ID",
			Data:    nil,
		})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid question index",
			Data:    nil,
		})
	}

	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Success: false,
			Message: "Invalid request payload",
			Data:    nil,
		})
	}

	if err := h.interviewService.SubmitAnswer(c.Context(), user, role, attemptID.String(), index, req.Answer); err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrNoInterviews):
			return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
				Success: false,
				Message: "No interviews found",
				Data:    nil,
			})
		case apperrors.Is(err, apperrors.ErrIndexOutOfRange):
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Success: false,
				Message: "Question index out of range",
				Data:    nil,
			})
		case apperrors.Is(err, apperrors.ErrAlreadyFinalized):
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Success: false,
				Message: "Interview is already finalized",
				Data:    nil,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
				Success: false,
				Message: "An error occured when trying to submit the answer",
				Data:    nil,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Success: true,
		Message: "Answer submitted successfully",
		Data:    fiber.Map{},
	})
}

// parseOptionalID validates the :id path segment when present and returns
// it in the canonical lowercase form the store uses.
func parseOptionalID(c *fiber.Ctx, name string) (*string, error) {
	param := c.Params(name)
	if param == "" {
		return nil, nil
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, err
	}
	canonical := id.String()
	return &canonical, nil
}

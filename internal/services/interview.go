package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/repositories"
)

// resumeUploadMessage is the queue payload for the resume-upload topic.
// Consumers must tolerate redelivery: they re-fetch the current attempt
// for (email, role) instead of trusting message order.
type resumeUploadMessage struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InterviewService owns the attempt lifecycle. State is never advanced by
// an explicit transition: each actor writes the fields it owns and readers
// derive the state from them, which keeps redelivered messages harmless.
type InterviewService interface {
	UploadResume(ctx context.Context, user *models.User, role string, data []byte, name string) (string, error)
	SelectAttempt(user *models.User, role string, attemptID *string) (*models.Interview, error)
	GetQuestions(ctx context.Context, user *models.User, role string, attemptID *string) ([]models.Question, error)
	SubmitAnswer(ctx context.Context, user *models.User, role string, attemptID string, index int, answer string) error
	GetFeedback(ctx context.Context, user *models.User, role string, attemptID *string) (string, float64, error)
}

type interviewService struct {
	userRepo  repositories.UserRepository
	producer  QueueProducer
	pdfParser PDFParserService
}

func NewInterviewService(
	userRepo repositories.UserRepository,
	producer QueueProducer,
	pdfParser PDFParserService,
) InterviewService {
	return &interviewService{
		userRepo:  userRepo,
		producer:  producer,
		pdfParser: pdfParser,
	}
}

// UploadResume implements InterviewService. Every upload appends a new
// attempt; the store write must succeed before the queue publish is
// attempted, and the publish outcome never reaches the caller.
func (s *interviewService) UploadResume(ctx context.Context, user *models.User, role string, data []byte, name string) (string, error) {
	if err := s.pdfParser.Validate(data); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidResume, err)
	}

	attempt := &models.Interview{
		ID:              uuid.NewString(),
		Role:            role,
		ResumeData:      data,
		ResumeName:      name,
		ResumeProcessed: false,
		CreatedAt:       time.Now(),
		Questions:       []models.Question{},
	}

	if err := s.userRepo.AppendInterview(ctx, user.Email, attempt); err != nil {
		return "", err
	}

	payload, _ := json.Marshal(resumeUploadMessage{Email: user.Email, Role: role})
	s.producer.Publish(ctx, TopicResumeUpload, payload)

	return attempt.ID, nil
}

// SelectAttempt implements InterviewService. Without an attempt id the
// most recent attempt by creation time wins, ties going to the later
// insertion; this is the "current attempt" every unpinned read and write
// operates on.
func (s *interviewService) SelectAttempt(user *models.User, role string, attemptID *string) (*models.Interview, error) {
	var picked *models.Interview
	for i := range user.Interviews {
		attempt := &user.Interviews[i]
		if attempt.Role != role {
			continue
		}
		if attemptID != nil {
			if attempt.ID == *attemptID {
				return attempt, nil
			}
			continue
		}
		if picked == nil || !attempt.CreatedAt.Before(picked.CreatedAt) {
			picked = attempt
		}
	}
	if picked == nil {
		return nil, apperrors.ErrNoInterviews
	}
	return picked, nil
}

// GetQuestions implements InterviewService. Before questions exist this
// reports pending, never an error: an attempt whose processing finished
// with zero questions is indistinguishable from one still in flight.
func (s *interviewService) GetQuestions(ctx context.Context, user *models.User, role string, attemptID *string) ([]models.Question, error) {
	attempt, err := s.SelectAttempt(user, role, attemptID)
	if err != nil {
		return nil, err
	}

	switch attempt.State() {
	case models.StateCreated, models.StateResumeUploaded, models.StateProcessing:
		return nil, apperrors.ErrPending
	}

	return attempt.Questions, nil
}

// SubmitAnswer implements InterviewService. The index bound is checked
// before anything else; once feedback exists the attempt is terminal and
// answers are immutable.
func (s *interviewService) SubmitAnswer(ctx context.Context, user *models.User, role string, attemptID string, index int, answer string) error {
	attempt, err := s.SelectAttempt(user, role, &attemptID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(attempt.Questions) {
		return apperrors.ErrIndexOutOfRange
	}

	if attempt.State() == models.StateFeedbackReady {
		return apperrors.ErrAlreadyFinalized
	}

	return s.userRepo.SetAnswer(ctx, user.Email, attempt.ID, index, answer)
}

// GetFeedback implements InterviewService.
func (s *interviewService) GetFeedback(ctx context.Context, user *models.User, role string, attemptID *string) (string, float64, error) {
	attempt, err := s.SelectAttempt(user, role, attemptID)
	if err != nil {
		return "", 0, err
	}

	if attempt.State() != models.StateFeedbackReady {
		return "", 0, apperrors.ErrPending
	}

	return *attempt.Feedback, *attempt.Rating, nil
}

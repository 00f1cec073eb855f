package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/models"
)

// storeErr tags a driver failure so callers can recognize a store outage;
// the request it happened in is lost either way.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
}

// UserRepository is the record store adapter. Interview attempts are
// embedded in the owning user document; attempt-level writes address one
// array element by attempt id and never touch siblings.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	AppendInterview(ctx context.Context, email string, interview *models.Interview) error
	SetQuestions(ctx context.Context, email string, interviewID string, questions []models.Question) error
	SetAnswer(ctx context.Context, email string, interviewID string, index int, answer string) error
	SetFeedback(ctx context.Context, email string, interviewID string, feedback string, rating float64) error
}

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection("users")}
}

// Create implements UserRepository.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.Interviews == nil {
		user.Interviews = []models.Interview{}
	}
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", storeErr(err))
	}
	return nil
}

// FindByEmail implements UserRepository.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %q: %w", email, apperrors.ErrUnknownUser)
		}
		return nil, fmt.Errorf("failed to find user: %w", storeErr(err))
	}
	return &user, nil
}

// AppendInterview implements UserRepository. Every upload appends a fresh
// attempt; existing attempts for the same role are left untouched.
func (r *userRepository) AppendInterview(ctx context.Context, email string, interview *models.Interview) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "interviews", Value: interview}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to append interview: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("append interview for %q: %w", email, apperrors.ErrUnknownUser)
	}
	return nil
}

// SetQuestions implements UserRepository. Questions and the processed flag
// are written in one update so a reader can never observe questions on an
// unprocessed attempt.
func (r *userRepository) SetQuestions(ctx context.Context, email string, interviewID string, questions []models.Question) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{
			{Key: "email", Value: email},
			{Key: "interviews.id", Value: interviewID},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "interviews.$.questions", Value: questions},
			{Key: "interviews.$.isResumeProcessed", Value: true},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set questions: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set questions: %w", apperrors.ErrNoInterviews)
	}
	return nil
}

// SetAnswer implements UserRepository.
func (r *userRepository) SetAnswer(ctx context.Context, email string, interviewID string, index int, answer string) error {
	field := fmt.Sprintf("interviews.$.questions.%d.userAnswer", index)
	res, err := r.col.UpdateOne(ctx,
		bson.D{
			{Key: "email", Value: email},
			{Key: "interviews.id", Value: interviewID},
		},
		bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: answer}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set answer: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set answer: %w", apperrors.ErrNoInterviews)
	}
	return nil
}

// SetFeedback implements UserRepository. Feedback and rating travel in the
// same update; one is never visible without the other.
func (r *userRepository) SetFeedback(ctx context.Context, email string, interviewID string, feedback string, rating float64) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{
			{Key: "email", Value: email},
			{Key: "interviews.id", Value: interviewID},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "interviews.$.feedback", Value: feedback},
			{Key: "interviews.$.rating", Value: rating},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set feedback: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set feedback: %w", apperrors.ErrNoInterviews)
	}
	return nil
}

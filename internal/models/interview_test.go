package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestInterviewStateDerivation(t *testing.T) {
	tests := []struct {
		name     string
		attempt  Interview
		expected InterviewState
	}{
		{
			name:     "no resume",
			attempt:  Interview{},
			expected: StateCreated,
		},
		{
			name:     "resume not yet processed",
			attempt:  Interview{ResumeData: []byte("pdf")},
			expected: StateResumeUploaded,
		},
		{
			name:     "processed without questions",
			attempt:  Interview{ResumeData: []byte("pdf"), ResumeProcessed: true},
			expected: StateProcessing,
		},
		{
			name: "questions without feedback",
			attempt: Interview{
				ResumeData:      []byte("pdf"),
				ResumeProcessed: true,
				Questions:       []Question{{Question: "q1"}},
			},
			expected: StateQuestionsReady,
		},
		{
			name: "answers submitted but no feedback yet",
			attempt: Interview{
				ResumeData:      []byte("pdf"),
				ResumeProcessed: true,
				Questions:       []Question{{Question: "q1", UserAnswer: "a1"}},
			},
			// Observationally the same as questions-ready until the
			// worker writes feedback.
			expected: StateQuestionsReady,
		},
		{
			name: "feedback present",
			attempt: Interview{
				ResumeData:      []byte("pdf"),
				ResumeProcessed: true,
				Questions:       []Question{{Question: "q1", UserAnswer: "a1"}},
				Feedback:        strPtr("good"),
				Rating:          floatPtr(4.0),
			},
			expected: StateFeedbackReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.attempt.State())
		})
	}
}

func TestInterviewIDStoredAsPlainString(t *testing.T) {
	// The external workers filter on "interviews.id"; the id must land in
	// the document as an ordinary string, not an encoded byte sequence.
	attempt := Interview{
		ID:        uuid.NewString(),
		Role:      "backend-engineer",
		CreatedAt: time.Now(),
	}

	raw, err := bson.Marshal(attempt)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	id, ok := doc["id"].(string)
	require.True(t, ok, "id must be a BSON string, got %T", doc["id"])
	assert.Equal(t, attempt.ID, id)
}

func TestSanitizeStripsCredentialHash(t *testing.T) {
	user := &User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$secret",
	}

	clean := user.Sanitize()
	assert.Empty(t, clean.PasswordHash)
	assert.Equal(t, "test@example.com", clean.Email)
	// The original is untouched.
	assert.Equal(t, "$2a$10$secret", user.PasswordHash)
}

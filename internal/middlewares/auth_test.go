package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vichaarmanthan/mock-interview/internal/config"
	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/repositories"
	"vichaarmanthan/mock-interview/internal/services"
)

// stubUserRepo fails every lookup with a fixed error, standing in for the
// Mongo adapter during an outage or for a missing user.
type stubUserRepo struct {
	findErr error
}

func (r stubUserRepo) Create(ctx context.Context, user *models.User) error { return r.findErr }

func (r stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, r.findErr
}

func (r stubUserRepo) AppendInterview(ctx context.Context, email string, interview *models.Interview) error {
	return r.findErr
}

func (r stubUserRepo) SetQuestions(ctx context.Context, email string, interviewID string, questions []models.Question) error {
	return r.findErr
}

func (r stubUserRepo) SetAnswer(ctx context.Context, email string, interviewID string, index int, answer string) error {
	return r.findErr
}

func (r stubUserRepo) SetFeedback(ctx context.Context, email string, interviewID string, feedback string, rating float64) error {
	return r.findErr
}

var _ repositories.UserRepository = stubUserRepo{}

const gateTestSecret = "test-secret"

func newGateApp(repo repositories.UserRepository) *fiber.App {
	authService := services.NewAuthService(repo, config.JWTConfig{Secret: gateTestSecret, Expiry: time.Hour})
	app := fiber.New()
	app.Get("/protected", Auth(authService), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func signGateToken(t *testing.T, email string) string {
	t.Helper()
	claims := &services.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(gateTestSecret))
	require.NoError(t, err)
	return token
}

func TestAuth_StoreOutageIsNotUnauthorized(t *testing.T) {
	// A well-formed token with the store down is a server-side failure;
	// answering 401 would tell a valid client its credential is bad.
	repo := stubUserRepo{findErr: fmt.Errorf("failed to find user: %w: server selection timeout", apperrors.ErrStoreUnavailable)}
	app := newGateApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signGateToken(t, "candidate@example.com"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAuth_UnknownUserIsUnauthorized(t *testing.T) {
	repo := stubUserRepo{findErr: fmt.Errorf("user %q: %w", "candidate@example.com", apperrors.ErrUnknownUser)}
	app := newGateApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signGateToken(t, "candidate@example.com"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_BadTokenIsUnauthorized(t *testing.T) {
	app := newGateApp(stubUserRepo{findErr: apperrors.ErrUnknownUser})

	for _, header := range []string{"", "Bearer garbage", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

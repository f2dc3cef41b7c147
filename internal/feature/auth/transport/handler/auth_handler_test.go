package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus_backend/internal/feature/auth/domain/entity"
	"nexus_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, email, password string) (*entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return &entity.User{ID: 1, Email: email}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials
}

func newAuthRouter(uc AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc)
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, email, password string) (*entity.User, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockRegister: func(ctx context.Context, email, password string) (*entity.User, error) {
				return &entity.User{ID: 42, Email: email}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"id": float64(42), "email": "test@example.com"},
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"email": "not-an-email", "password": "password123"},
			mockRegister:   nil, // usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockRegister:   nil, // usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "duplicate email",
			requestBody: gin.H{"email": "existing@example.com", "password": "password123"},
			mockRegister: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailTaken
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "Email already registered"},
		},
		{
			name:        "store failure",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockRegister: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, errors.New("connection lost")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "could not create user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&mockAuthUsecase{RegisterFunc: tt.mockRegister})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockLogin      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"access_token": "signed-token", "token_type": "bearer"},
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"email": "not-an-email", "password": "password123"},
			mockLogin:      nil, // usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:        "wrong password",
			requestBody: gin.H{"email": "test@example.com", "password": "wrong"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "Invalid credentials"},
		},
		{
			name:        "unknown email",
			requestBody: gin.H{"email": "nobody@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "Invalid credentials"},
		},
		{
			name:        "store failure",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("driver: bad connection")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&mockAuthUsecase{LoginFunc: tt.mockLogin})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

// TestAuthHandler_Login_SetsCookie verifies the access token is attached as
// an http-only SameSite=Lax cookie.
func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	router := newAuthRouter(&mockAuthUsecase{
		LoginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "signed-token", nil
		},
	})

	body, _ := json.Marshal(gin.H{"email": "test@example.com", "password": "password123"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "access_token", cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

// TestAuthHandler_Login_FailureBodiesIndistinguishable verifies unknown-email
// and wrong-password responses are byte-identical.
func TestAuthHandler_Login_FailureBodiesIndistinguishable(t *testing.T) {
	router := newAuthRouter(&mockAuthUsecase{}) // default Login always fails

	responses := make([]string, 0, 2)
	for _, payload := range []gin.H{
		{"email": "nobody@example.com", "password": "password123"},
		{"email": "someone@example.com", "password": "wrong-password"},
	} {
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		responses = append(responses, strings.TrimSpace(w.Body.String()))
	}

	assert.Equal(t, responses[0], responses[1])
}

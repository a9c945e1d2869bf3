package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigninHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Name: "Jane", Email: "jane@example.com"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAuthenticator)
		expectedCode int
		expectedErr  string
		expectToken  bool
	}{
		{
			name: "success",
			body: `{"email":"jane@example.com","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "secret1").
					Return("JWT_TOKEN", user, nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name: "wrong password",
			body: `{"email":"jane@example.com","password":"nope"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "nope").
					Return("", nil, fmt.Errorf("%w: bad password", apperr.ErrUnauthorized))
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Invalid email or password",
		},
		{
			name: "storage failure",
			body: `{"email":"jane@example.com","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "secret1").
					Return("", nil, apperr.Internal(errors.New("db down")))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
		{
			name:         "invalid json",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewSigninHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectToken {
				var resp models.SigninResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "JWT_TOKEN", resp.Token)
				require.NotNil(t, resp.User)
				assert.Equal(t, user.ID, resp.User.ID)
				return
			}

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error)
		})
	}
}

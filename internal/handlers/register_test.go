package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      models.RegisterRequest
		rawBody      bool // if true, send invalid JSON
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			reqBody: models.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Jane", "jane@example.com", "secret1").
					Return(&models.User{Name: "Jane"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Successfully signed up!"}`,
		},
		{
			name:    "email already exists",
			reqBody: models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "secret1").
					Return(nil, apperr.ErrConflict)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email already exists"}`,
		},
		{
			name:    "validation failed",
			reqBody: models.RegisterRequest{Name: "", Email: "bob@example.com", Password: "secret1"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "bob@example.com", "secret1").
					Return(nil, apperr.Validation("name", "Name is required"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","fields":{"name":"Name is required"}}`,
		},
		{
			name:    "internal server error",
			reqBody: models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "secret1"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Bob", "bob@example.com", "secret1").
					Return(nil, apperr.Internal(errors.New("pq: connection refused")))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

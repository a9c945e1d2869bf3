package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// newRequest builds a request as the router would hand it over: with chi URL
// params set and, when userID is non-nil, an authenticated caller.
func newRequest(method, target string, body io.Reader, params map[string]string, userID *uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if userID != nil {
		ctx = middlewares.ContextWithUserID(ctx, *userID)
	}
	return req.WithContext(ctx)
}

// multipartBody encodes fields and an optional photo file.
func multipartBody(t *testing.T, fields map[string]string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}

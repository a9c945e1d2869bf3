package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// multipartOverhead leaves room for the text fields next to the photo.
const multipartOverhead = 1 << 20

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseMultipart reads a multipart form whose "photo" file may be at most maxPhoto bytes.
// It returns the text fields that were present and the photo, if one was sent.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxPhoto int64) (map[string]string, *models.Photo, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhoto+multipartOverhead)

	if err := r.ParseMultipartForm(maxPhoto + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, apperr.Validation("photo", "Photo is too large")
		}
		return nil, nil, apperr.Validation("body", "Invalid multipart form")
	}

	fields := make(map[string]string)
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return fields, nil, nil
	}
	if err != nil {
		return nil, nil, apperr.Validation("photo", "Invalid photo")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhoto+1))
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	if int64(len(data)) > maxPhoto {
		return nil, nil, apperr.Validation("photo", "Photo is too large")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = http.DetectContentType(data)
	}

	return fields, &models.Photo{Data: data, ContentType: contentType}, nil
}

func optional(fields map[string]string, key string) *string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	return &v
}

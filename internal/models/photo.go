package models

// Photo is an uploaded image on its way to the blob store.
type Photo struct {
	Data        []byte
	ContentType string
}

// PhotoInfo is the photo metadata kept on a record. The bytes live in the blob store.
// swagger:model PhotoInfo
type PhotoInfo struct {
	ContentType string `json:"contentType" example:"image/png"`
	Size        int64  `json:"size" example:"2048"`
}

func photoInfo(contentType string, size int64) *PhotoInfo {
	if contentType == "" {
		return nil
	}
	return &PhotoInfo{ContentType: contentType, Size: size}
}

package media

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
)

// KindFromContentType maps an upload's MIME type to a media kind.
func KindFromContentType(contentType string) (Kind, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindPhoto, nil
	case strings.HasPrefix(contentType, "video/"):
		return KindVideo, nil
	default:
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
}

type Media struct {
	ID           string    `firestore:"id" json:"id"`
	Kind         Kind      `firestore:"type" json:"type"`
	URL          string    `firestore:"url" json:"url"`
	ThumbnailURL *string   `firestore:"thumbnailUrl" json:"thumbnailUrl"`
	UploadedBy   string    `firestore:"uploadedBy" json:"uploadedBy"`
	UploadedAt   time.Time `firestore:"uploadedAt" json:"uploadedAt"`
	Year         int       `firestore:"year" json:"year"`
	Description  string    `firestore:"description" json:"description"`
}

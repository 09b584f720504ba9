package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campCrew/clients/gcp"
	"campCrew/set"
	"campCrew/utils"
)

// Service owns the shared photo/video gallery. Objects live in storage under
// media/{year}/{uploader}; the Firestore document carries the metadata.
type Service interface {
	// GetAll returns media newest first. A year of 0 returns every year.
	GetAll(ctx context.Context, year int) ([]Media, error)
	// Get returns one media record. Returns NotFound when absent.
	Get(ctx context.Context, mediaID string) (*Media, error)
	Upload(ctx context.Context, year int, uploadedBy, filename, contentType, description string, r io.Reader) (*Media, error)
	// Delete removes the stored object (best effort) and then the record.
	Delete(ctx context.Context, mediaID string) error
	// Years returns the distinct years with media, newest first.
	Years(ctx context.Context) ([]int, error)
}

type service struct {
	db      *firestore.Client
	storage *gcp.Storage
}

var _ Service = (*service)(nil)

const mediaCollection = "media"

func NewService(db *firestore.Client, storage *gcp.Storage) Service {
	return &service{db: db, storage: storage}
}

var NotFound = errors.New("media not found")

func (s *service) GetAll(ctx context.Context, year int) ([]Media, error) {
	query := s.db.Collection(mediaCollection).Query
	if year != 0 {
		query = query.Where("year", "==", year)
	}
	docs, err := query.OrderBy("uploadedAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	results, err := utils.GetAllToStructs[Media](docs)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) Get(ctx context.Context, mediaID string) (*Media, error) {
	doc, err := s.db.Collection(mediaCollection).Doc(mediaID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, NotFound
		}
		return nil, err
	}
	result := &Media{}
	if err := doc.DataTo(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) Upload(ctx context.Context, year int, uploadedBy, filename, contentType, description string, r io.Reader) (*Media, error) {
	kind, err := KindFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("media/%d/%s/%d_%s", year, uploadedBy, time.Now().UnixMilli(), filename)
	url, err := s.storage.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media object: %w", err)
	}

	ref := s.db.Collection(mediaCollection).NewDoc()
	m := &Media{
		ID:          ref.ID,
		Kind:        kind,
		URL:         url,
		UploadedBy:  uploadedBy,
		UploadedAt:  time.Now(),
		Year:        year,
		Description: description,
	}
	if _, err := ref.Set(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, mediaID string) error {
	m, err := s.Get(ctx, mediaID)
	if err != nil {
		return err
	}

	// Object removal is best effort; the record is the source of truth for
	// the gallery and an orphaned object is harmless.
	if objectName := s.storage.ObjectFromURL(m.URL); objectName != "" {
		if err := s.storage.Delete(ctx, objectName); err != nil {
			log.Warn().Err(err).Str("mediaId", mediaID).Msg("failed to delete media object")
		}
	}

	if _, err := s.db.Collection(mediaCollection).Doc(mediaID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete media %s: %w", mediaID, err)
	}
	return nil
}

func (s *service) Years(ctx context.Context) ([]int, error) {
	all, err := s.GetAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	years := set.New[int]()
	for _, m := range all {
		years.Add(m.Year)
	}
	result := years.ToSlice()
	sort.Sort(sort.Reverse(sort.IntSlice(result)))
	return result, nil
}

package campmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campCrew/clients/gcp"
	"campCrew/set"
)

// Service owns one camp map per year. Uploading an image for a year creates
// (or resets) that year's map with an empty spot list; the spot list is then
// replaced wholesale on every editor save, last write wins.
type Service interface {
	// Get returns the map for a year. Returns NotFound when absent.
	Get(ctx context.Context, year int) (*Map, error)
	// GetCurrent returns the map for the current calendar year.
	GetCurrent(ctx context.Context) (*Map, error)
	// UploadImage stores the map image and creates the year's map document
	// with an empty spot list, dropping any previous spots for that year.
	UploadImage(ctx context.Context, year int, filename, contentType string, r io.Reader, uploadedBy string) (*Map, error)
	// ReplaceSpots overwrites the year's entire spot list. Concurrent editor
	// saves are last-write-wins; that is accepted admin-only behavior.
	ReplaceSpots(ctx context.Context, year int, spots []Spot) error
	// AddSpotAt places a new spot from a pixel click on the rendered image
	// and persists the grown list.
	AddSpotAt(ctx context.Context, year int, clickX, clickY, imageWidth, imageHeight float64) (*Map, error)
	// DeleteSpot removes one spot; remaining numbers are untouched.
	DeleteSpot(ctx context.Context, year int, spotNumber int) error
	// Assign sets or clears the member on one spot via a server-side
	// read-modify-write of the current list.
	Assign(ctx context.Context, year int, spotNumber int, uid *string) error
}

type service struct {
	db      *firestore.Client
	storage *gcp.Storage
}

var _ Service = (*service)(nil)

const mapsCollection = "campMaps"

func NewService(db *firestore.Client, storage *gcp.Storage) Service {
	return &service{db: db, storage: storage}
}

var NotFound = errors.New("camp map not found")

func (s *service) Get(ctx context.Context, year int) (*Map, error) {
	doc, err := s.db.Collection(mapsCollection).Doc(strconv.Itoa(year)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, NotFound
		}
		return nil, err
	}
	result := &Map{}
	if err := doc.DataTo(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) GetCurrent(ctx context.Context) (*Map, error) {
	return s.Get(ctx, time.Now().Year())
}

func (s *service) UploadImage(ctx context.Context, year int, filename, contentType string, r io.Reader, uploadedBy string) (*Map, error) {
	objectName := fmt.Sprintf("campMaps/%d/%s", year, filename)
	url, err := s.storage.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload map image: %w", err)
	}

	m := &Map{
		Year:       year,
		ImageURL:   url,
		Spots:      []Spot{},
		UploadedBy: uploadedBy,
		UploadedAt: time.Now(),
	}
	if _, err := s.db.Collection(mapsCollection).Doc(strconv.Itoa(year)).Set(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create camp map for %d: %w", year, err)
	}
	log.Info().Int("year", year).Str("imageUrl", url).Msg("camp map image uploaded")
	return m, nil
}

func (s *service) ReplaceSpots(ctx context.Context, year int, spots []Spot) error {
	numbers := set.New[int]()
	for _, spot := range spots {
		if numbers.Contains(spot.Number) {
			return fmt.Errorf("duplicate spot number %d", spot.Number)
		}
		numbers.Add(spot.Number)
	}

	_, err := s.db.Collection(mapsCollection).Doc(strconv.Itoa(year)).Update(ctx, []firestore.Update{
		{Path: "spots", Value: spots},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		return fmt.Errorf("failed to replace spots for %d: %w", year, err)
	}
	return nil
}

func (s *service) AddSpotAt(ctx context.Context, year int, clickX, clickY, imageWidth, imageHeight float64) (*Map, error) {
	m, err := s.Get(ctx, year)
	if err != nil {
		return nil, err
	}
	updated, err := AddSpot(m.Spots, clickX, clickY, imageWidth, imageHeight)
	if err != nil {
		return nil, err
	}
	if err := s.ReplaceSpots(ctx, year, updated); err != nil {
		return nil, err
	}
	m.Spots = updated
	return m, nil
}

func (s *service) DeleteSpot(ctx context.Context, year int, spotNumber int) error {
	m, err := s.Get(ctx, year)
	if err != nil {
		return err
	}
	updated, err := RemoveSpot(m.Spots, spotNumber)
	if err != nil {
		return err
	}
	return s.ReplaceSpots(ctx, year, updated)
}

func (s *service) Assign(ctx context.Context, year int, spotNumber int, uid *string) error {
	m, err := s.Get(ctx, year)
	if err != nil {
		return err
	}
	updated, err := AssignSpot(m.Spots, spotNumber, uid)
	if err != nil {
		return err
	}
	return s.ReplaceSpots(ctx, year, updated)
}

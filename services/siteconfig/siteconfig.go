package siteconfig

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type PackingItem struct {
	Item     string `firestore:"item" json:"item"`
	Category string `firestore:"category" json:"category"`
}

type UsefulLink struct {
	Title       string `firestore:"title" json:"title"`
	URL         string `firestore:"url" json:"url"`
	Description string `firestore:"description" json:"description"`
}

// Config is the singleton site configuration document.
type Config struct {
	DuesLink      string        `firestore:"duesLink" json:"duesLink"`
	HandbookLink  string        `firestore:"handbookLink" json:"handbookLink"`
	ChatGroupLink string        `firestore:"chatGroupLink" json:"chatGroupLink"`
	PackingList   []PackingItem `firestore:"packingList" json:"packingList"`
	UsefulLinks   []UsefulLink  `firestore:"usefulLinks" json:"usefulLinks"`
}

type Service interface {
	// Get returns the site configuration, or a zero-value config when the
	// document has never been written.
	Get(ctx context.Context) (*Config, error)
	Update(ctx context.Context, config *Config) error
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const (
	configCollection = "config"
	siteDoc          = "site"
)

func NewService(db *firestore.Client) Service {
	return &service{db: db}
}

func (s *service) Get(ctx context.Context) (*Config, error) {
	doc, err := s.db.Collection(configCollection).Doc(siteDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &Config{PackingList: []PackingItem{}, UsefulLinks: []UsefulLink{}}, nil
		}
		return nil, err
	}
	config := &Config{}
	if err := doc.DataTo(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (s *service) Update(ctx context.Context, config *Config) error {
	if _, err := s.db.Collection(configCollection).Doc(siteDoc).Set(ctx, config); err != nil {
		return fmt.Errorf("failed to update site config: %w", err)
	}
	return nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service is the member directory. The other services reference members by uid
// for display and for role checks; none of them hold long-lived copies.
type Service interface {
	// Create writes a new member profile with directory defaults. The uid is
	// the document key, so repeated creates for the same uid overwrite.
	Create(ctx context.Context, uid, email, displayName string, photoURL *string) (*User, error)
	// GetByUID is a point lookup. Returns NotFound when no profile exists.
	GetByUID(ctx context.Context, uid string) (*User, error)
	// GetAll returns every member ordered by display name. There is no
	// pagination; the directory is camp-sized.
	GetAll(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, uid string, update ProfileUpdate) error
	SetRole(ctx context.Context, uid string, role Role) error
	// AssignTentNumber sets or clears (nil) the member's tent number. It does
	// not touch the camp-map spot list.
	AssignTentNumber(ctx context.Context, uid string, tentNumber *int) error
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const usersCollection = "users"

func NewService(db *firestore.Client) Service {
	return &service{db: db}
}

var NotFound = errors.New("user not found")

func (s *service) Create(ctx context.Context, uid, email, displayName string, photoURL *string) (*User, error) {
	if uid == "" {
		return nil, errors.New("uid is empty")
	}
	u := &User{
		UID:           uid,
		Email:         email,
		Role:          RoleMember,
		DisplayName:   displayName,
		PhotoURL:      photoURL,
		Skills:        []string{},
		YearsAttended: []int{},
		CreatedAt:     time.Now(),
	}
	_, err := s.db.Collection(usersCollection).Doc(uid).Set(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", uid, err)
	}
	return u, nil
}

func (s *service) GetByUID(ctx context.Context, uid string) (*User, error) {
	doc, err := s.db.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, NotFound
		}
		return nil, err
	}
	u := &User{}
	if err := doc.DataTo(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetAll(ctx context.Context) ([]User, error) {
	results := make([]User, 0)
	iter := s.db.Collection(usersCollection).
		OrderBy("displayName", firestore.Asc).
		Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		u := User{}
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, nil
}

// UpdateProfile applies a patch of the member-editable fields. Nil fields in
// the patch are skipped, so a partial body never clears existing data.
func (s *service) UpdateProfile(ctx context.Context, uid string, update ProfileUpdate) error {
	fields := structs.Map(update)
	if len(fields) == 0 {
		log.Warn().Str("uid", uid).Msg("empty profile update")
		return nil
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := s.db.Collection(usersCollection).Doc(uid).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		return fmt.Errorf("failed to update profile for %s: %w", uid, err)
	}
	return nil
}

func (s *service) SetRole(ctx context.Context, uid string, role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}
	_, err := s.db.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		return fmt.Errorf("failed to set role for %s: %w", uid, err)
	}
	return nil
}

func (s *service) AssignTentNumber(ctx context.Context, uid string, tentNumber *int) error {
	_, err := s.db.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "tentNumber", Value: tentNumber},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		return fmt.Errorf("failed to assign tent number for %s: %w", uid, err)
	}
	return nil
}

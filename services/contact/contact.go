package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campCrew/utils"
)

// Service owns the shared contacts collection. Submissions arrive from the
// public intake forms; triage is admin-only and limited to the handled flag.
type Service interface {
	Submit(ctx context.Context, submission *Submission) (*Submission, error)
	// GetAll returns submissions newest first, filtered by handled state.
	GetAll(ctx context.Context, filter Filter) ([]Submission, error)
	SetHandled(ctx context.Context, submissionID string, handled bool) error
	Delete(ctx context.Context, submissionID string) error
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const contactsCollection = "contacts"

func NewService(db *firestore.Client) Service {
	return &service{db: db}
}

var NotFound = errors.New("submission not found")

func (s *service) Submit(ctx context.Context, submission *Submission) (*Submission, error) {
	if submission == nil {
		return nil, errors.New("submission is nil")
	}
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	ref := s.db.Collection(contactsCollection).NewDoc()
	submission.ID = ref.ID
	submission.CreatedAt = time.Now()
	submission.Handled = false

	if _, err := ref.Set(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return submission, nil
}

func (s *service) GetAll(ctx context.Context, filter Filter) ([]Submission, error) {
	query := s.db.Collection(contactsCollection).Query
	switch filter {
	case FilterPending:
		query = query.Where("handled", "==", false)
	case FilterHandled:
		query = query.Where("handled", "==", true)
	case FilterAll, "":
	default:
		return nil, fmt.Errorf("unknown filter %q", filter)
	}

	docs, err := query.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	results, err := utils.GetAllToStructs[Submission](docs)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) SetHandled(ctx context.Context, submissionID string, handled bool) error {
	_, err := s.db.Collection(contactsCollection).Doc(submissionID).Update(ctx, []firestore.Update{
		{Path: "handled", Value: handled},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		return fmt.Errorf("failed to update submission %s: %w", submissionID, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, submissionID string) error {
	if _, err := s.db.Collection(contactsCollection).Doc(submissionID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete submission %s: %w", submissionID, err)
	}
	return nil
}

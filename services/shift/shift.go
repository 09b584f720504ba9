package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campCrew/set"
	"campCrew/utils"
)

// Service owns the shifts collection. Full edits are an administrator
// concern; members only touch slot assignments, and those go through
// transactions so two sessions cannot both claim the same slot.
type Service interface {
	// GetAll returns every shift ordered by date.
	GetAll(ctx context.Context) ([]Shift, error)
	// Get returns a single shift. Returns NotFound when absent.
	Get(ctx context.Context, shiftID string) (*Shift, error)
	Create(ctx context.Context, shift *Shift) (*Shift, error)
	// Update edits an existing shift. Returns NotFound when absent rather
	// than creating the document.
	Update(ctx context.Context, shift *Shift) error
	Delete(ctx context.Context, shiftID string) error
	// SignUp claims an open slot for uid. Returns ErrSlotTaken when another
	// member holds it, including when that member won a concurrent claim.
	SignUp(ctx context.Context, shiftID, slotID, uid string) (*Shift, error)
	// Cancel releases a slot held by uid.
	Cancel(ctx context.Context, shiftID, slotID, uid string) (*Shift, error)
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const shiftsCollection = "shifts"

func NewService(db *firestore.Client) Service {
	return &service{db: db}
}

var NotFound = errors.New("shift not found")

func (s *service) GetAll(ctx context.Context) ([]Shift, error) {
	docs, err := s.db.Collection(shiftsCollection).
		OrderBy("date", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	results, err := utils.GetAllToStructs[Shift](docs)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) Get(ctx context.Context, shiftID string) (*Shift, error) {
	doc, err := s.db.Collection(shiftsCollection).Doc(shiftID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, NotFound
		}
		return nil, err
	}
	result := &Shift{}
	if err := doc.DataTo(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, shift *Shift) (*Shift, error) {
	if shift == nil {
		return nil, errors.New("shift is nil")
	}
	if err := normalizeSlots(shift.Slots); err != nil {
		return nil, err
	}

	ref := s.db.Collection(shiftsCollection).NewDoc()
	shift.ID = ref.ID
	shift.CreatedAt = time.Now()

	if _, err := ref.Set(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift, nil
}

func (s *service) Update(ctx context.Context, shift *Shift) error {
	if shift == nil || shift.ID == "" {
		return errors.New("shift id is required")
	}
	if err := normalizeSlots(shift.Slots); err != nil {
		return err
	}
	_, err := s.db.Collection(shiftsCollection).Doc(shift.ID).Update(ctx, editableFields(shift))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return NotFound
		}
		return fmt.Errorf("failed to update shift %s: %w", shift.ID, err)
	}
	return nil
}

// editableFields lists the updates an edit may apply. The id, createdBy and
// createdAt fields are never in the list, so an edit cannot rewrite them.
func editableFields(shift *Shift) []firestore.Update {
	return []firestore.Update{
		{Path: "title", Value: shift.Title},
		{Path: "description", Value: shift.Description},
		{Path: "date", Value: shift.Date},
		{Path: "startTime", Value: shift.StartTime},
		{Path: "endTime", Value: shift.EndTime},
		{Path: "location", Value: shift.Location},
		{Path: "slots", Value: shift.Slots},
	}
}

func (s *service) Delete(ctx context.Context, shiftID string) error {
	_, err := s.db.Collection(shiftsCollection).Doc(shiftID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", shiftID, err)
	}
	return nil
}

func (s *service) SignUp(ctx context.Context, shiftID, slotID, uid string) (*Shift, error) {
	return s.mutateSlots(ctx, shiftID, func(slots []Slot) ([]Slot, error) {
		return Claim(slots, slotID, uid)
	})
}

func (s *service) Cancel(ctx context.Context, shiftID, slotID, uid string) (*Shift, error) {
	return s.mutateSlots(ctx, shiftID, func(slots []Slot) ([]Slot, error) {
		return Release(slots, slotID, uid)
	})
}

// mutateSlots reads the shift, applies fn to its slot list, and writes the
// result back, all inside a transaction. A concurrent write to the same shift
// forces a re-run on fresh state, so a lost claim surfaces as ErrSlotTaken
// instead of being silently overwritten.
func (s *service) mutateSlots(ctx context.Context, shiftID string, fn func([]Slot) ([]Slot, error)) (*Shift, error) {
	ref := s.db.Collection(shiftsCollection).Doc(shiftID)
	result := &Shift{}
	err := s.db.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return NotFound
			}
			return err
		}
		if err := doc.DataTo(result); err != nil {
			return err
		}
		updated, err := fn(result.Slots)
		if err != nil {
			return err
		}
		result.Slots = updated
		return tx.Update(ref, []firestore.Update{{Path: "slots", Value: updated}})
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("shiftId", shiftID).Int("filled", result.Filled()).Msg("slot list updated")
	return result, nil
}

// normalizeSlots assigns IDs to new slots and rejects duplicate IDs.
func normalizeSlots(slots []Slot) error {
	seen := set.New[string]()
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.NewString()
		}
		if seen.Contains(slots[i].ID) {
			return fmt.Errorf("duplicate slot id %q", slots[i].ID)
		}
		seen.Add(slots[i].ID)
	}
	return nil
}

package shift

import (
	"errors"

	"campCrew/utils"
)

// Slot claim errors. These are signaled explicitly rather than silently
// dropped so a caller can tell "already taken" from "succeeded".
var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotPreAssigned = errors.New("slot is pre-assigned")
	ErrSlotTaken       = errors.New("slot is already taken")
	ErrNotSlotHolder   = errors.New("slot is not held by this member")
)

// Claim returns a copy of slots with slotID assigned to uid. Only an open
// (not pre-assigned) and empty slot can be claimed; all other slots come back
// unchanged.
func Claim(slots []Slot, slotID, uid string) ([]Slot, error) {
	i, err := indexOf(slots, slotID)
	if err != nil {
		return nil, err
	}
	if slots[i].PreAssigned {
		return nil, ErrSlotPreAssigned
	}
	if slots[i].AssignedTo != nil {
		return nil, ErrSlotTaken
	}
	updated := make([]Slot, len(slots))
	copy(updated, slots)
	updated[i].AssignedTo = utils.ToPointer(uid)
	return updated, nil
}

// Release returns a copy of slots with slotID cleared. Only the member
// currently holding an open slot may release it.
func Release(slots []Slot, slotID, uid string) ([]Slot, error) {
	i, err := indexOf(slots, slotID)
	if err != nil {
		return nil, err
	}
	if slots[i].PreAssigned {
		return nil, ErrSlotPreAssigned
	}
	if slots[i].AssignedTo == nil || *slots[i].AssignedTo != uid {
		return nil, ErrNotSlotHolder
	}
	updated := make([]Slot, len(slots))
	copy(updated, slots)
	updated[i].AssignedTo = nil
	return updated, nil
}

// Filled counts the slots with a non-nil assignment.
func Filled(slots []Slot) int {
	count := 0
	for _, slot := range slots {
		if slot.AssignedTo != nil {
			count++
		}
	}
	return count
}

func indexOf(slots []Slot, slotID string) (int, error) {
	for i, slot := range slots {
		if slot.ID == slotID {
			return i, nil
		}
	}
	return 0, ErrSlotNotFound
}

package campmap

import "errors"

var (
	ErrSpotNotFound = errors.New("spot not found")
	ErrBadImageSize = errors.New("image dimensions must be positive")
)

// AddSpot appends a new unassigned spot at a pixel click position, converted
// to percentage coordinates. The new spot takes the next unused number: max
// existing + 1, or 1 on an empty map. Numbers freed by deletion below the max
// are not reused.
func AddSpot(spots []Spot, clickX, clickY, imageWidth, imageHeight float64) ([]Spot, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return nil, ErrBadImageSize
	}
	next := 1
	for _, spot := range spots {
		if spot.Number >= next {
			next = spot.Number + 1
		}
	}
	updated := make([]Spot, len(spots), len(spots)+1)
	copy(updated, spots)
	return append(updated, Spot{
		Number: next,
		X:      clickX / imageWidth * 100,
		Y:      clickY / imageHeight * 100,
	}), nil
}

// AssignSpot sets (or clears, with nil) the member holding a spot. A member
// may end up on several spots; the editor does not prevent that.
func AssignSpot(spots []Spot, number int, uid *string) ([]Spot, error) {
	updated := make([]Spot, len(spots))
	copy(updated, spots)
	for i := range updated {
		if updated[i].Number == number {
			updated[i].AssignedTo = uid
			return updated, nil
		}
	}
	return nil, ErrSpotNotFound
}

// RemoveSpot deletes a spot from the list. Remaining spots keep their
// numbers.
func RemoveSpot(spots []Spot, number int) ([]Spot, error) {
	updated := make([]Spot, 0, len(spots))
	found := false
	for _, spot := range spots {
		if spot.Number == number {
			found = true
			continue
		}
		updated = append(updated, spot)
	}
	if !found {
		return nil, ErrSpotNotFound
	}
	return updated, nil
}

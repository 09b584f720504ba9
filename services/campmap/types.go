package campmap

import "time"

// Spot is one marked location on the map image. Coordinates are percentages
// of the image dimensions so the image can be rendered at any size.
type Spot struct {
	Number     int     `firestore:"number" json:"number"`
	X          float64 `firestore:"x" json:"x"`
	Y          float64 `firestore:"y" json:"y"`
	AssignedTo *string `firestore:"assignedTo" json:"assignedTo"`
}

// Map is the camp layout for one year. There is at most one per year, keyed
// by the year itself; spot numbers are unique within a map.
type Map struct {
	Year       int       `firestore:"year" json:"year"`
	ImageURL   string    `firestore:"imageUrl" json:"imageUrl"`
	Spots      []Spot    `firestore:"spots" json:"spots"`
	UploadedBy string    `firestore:"uploadedBy" json:"uploadedBy"`
	UploadedAt time.Time `firestore:"uploadedAt" json:"uploadedAt"`
}

// SpotByNumber finds a spot in the map, for the member-facing view that
// resolves a tent number to its marker. Returns nil when absent.
func (m Map) SpotByNumber(number int) *Spot {
	for i := range m.Spots {
		if m.Spots[i].Number == number {
			return &m.Spots[i]
		}
	}
	return nil
}

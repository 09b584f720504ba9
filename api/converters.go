package api

import (
	"campCrew/services/campmap"
	"campCrew/services/contact"
	"campCrew/services/shift"
)

func toShiftResponse(s shift.Shift) ShiftResponse {
	return ShiftResponse{
		Shift:      s,
		Filled:     s.Filled(),
		TotalSlots: len(s.Slots),
	}
}

func toShiftResponses(shifts []shift.Shift) []ShiftResponse {
	result := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		result = append(result, toShiftResponse(s))
	}
	return result
}

func toSlots(slots []SlotRequest) []shift.Slot {
	result := make([]shift.Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, shift.Slot{
			ID:          s.ID,
			AssignedTo:  s.AssignedTo,
			PreAssigned: s.PreAssigned,
		})
	}
	return result
}

func toSpots(spots []SpotRequest) []campmap.Spot {
	result := make([]campmap.Spot, 0, len(spots))
	for _, s := range spots {
		result = append(result, campmap.Spot{
			Number:     s.Number,
			X:          s.X,
			Y:          s.Y,
			AssignedTo: s.AssignedTo,
		})
	}
	return result
}

func toSubmission(req ContactRequest) *contact.Submission {
	return &contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Kind:    req.Type,
		Phone:   req.Phone,
		Subject: req.Subject,
	}
}

package api

import (
	"time"

	"campCrew/services/campmap"
	"campCrew/services/contact"
	"campCrew/services/shift"
	"campCrew/services/user"
)

type Pong struct {
	Ping string `json:"ping"`
}

type Error struct {
	Error string `json:"error"`
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetRoleRequest struct {
	Role user.Role `json:"role" binding:"required"`
}

type AssignTentRequest struct {
	TentNumber *int `json:"tentNumber"`
}

type SlotRequest struct {
	ID          string  `json:"id"`
	AssignedTo  *string `json:"assignedTo"`
	PreAssigned bool    `json:"preAssigned"`
}

type ShiftRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date" binding:"required"`
	StartTime   string        `json:"startTime" binding:"required"`
	EndTime     string        `json:"endTime" binding:"required"`
	Location    string        `json:"location"`
	Slots       []SlotRequest `json:"slots"`
}

// ShiftResponse adds the derived fill count to a shift.
type ShiftResponse struct {
	shift.Shift
	Filled     int `json:"filled"`
	TotalSlots int `json:"totalSlots"`
}

type ReplaceSpotsRequest struct {
	Spots []SpotRequest `json:"spots" binding:"required"`
}

type SpotRequest struct {
	Number     int     `json:"number" binding:"required"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	AssignedTo *string `json:"assignedTo"`
}

type AssignSpotRequest struct {
	AssignedTo *string `json:"assignedTo"`
}

type AddSpotRequest struct {
	ClickX      float64 `json:"clickX"`
	ClickY      float64 `json:"clickY"`
	ImageWidth  float64 `json:"imageWidth" binding:"required"`
	ImageHeight float64 `json:"imageHeight" binding:"required"`
}

// SpotResponse resolves a spot's assignment to a display-ready member.
type SpotResponse struct {
	campmap.Spot
	AssignedMember *user.User `json:"assignedMember,omitempty"`
}

type ContactRequest struct {
	Name    string       `json:"name" binding:"required"`
	Email   string       `json:"email" binding:"required,email"`
	Message string       `json:"message" binding:"required"`
	Type    contact.Kind `json:"type" binding:"required"`
	Phone   *string      `json:"phone"`
	Subject *string      `json:"subject"`
}

type HandledRequest struct {
	Handled bool `json:"handled"`
}

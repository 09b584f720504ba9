package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campCrew/services/shift"
)

// ListShifts (GET /shifts)
func (s Server) ListShifts(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	shifts, err := s.ShiftService.GetAll(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toShiftResponses(shifts))
}

// GetShift (GET /shifts/{shiftId})
func (s Server) GetShift(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	result, err := s.ShiftService.Get(c, c.Param("shiftId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toShiftResponse(*result))
}

// CreateShift (POST /shifts)
func (s Server) CreateShift(c *gin.Context) {
	admin, ok := s.requireAdmin(c)
	if !ok {
		return
	}
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	created, err := s.ShiftService.Create(c, &shift.Shift{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Slots:       toSlots(req.Slots),
		CreatedBy:   admin.UID,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toShiftResponse(*created))
}

// UpdateShift (PUT /shifts/{shiftId}) — full admin edit, slot list included.
func (s Server) UpdateShift(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	err := s.ShiftService.Update(c, &shift.Shift{
		ID:          c.Param("shiftId"),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Slots:       toSlots(req.Slots),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	updated, err := s.ShiftService.Get(c, c.Param("shiftId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toShiftResponse(*updated))
}

// DeleteShift (DELETE /shifts/{shiftId})
func (s Server) DeleteShift(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	if err := s.ShiftService.Delete(c, c.Param("shiftId")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SignUpForSlot (POST /shifts/{shiftId}/slots/{slotId}/signup) — a lost
// concurrent claim comes back as 409, not a silent overwrite.
func (s Server) SignUpForSlot(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	updated, err := s.ShiftService.SignUp(c, c.Param("shiftId"), c.Param("slotId"), u.UID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toShiftResponse(*updated))
}

// CancelSlotSignUp (DELETE /shifts/{shiftId}/slots/{slotId}/signup)
func (s Server) CancelSlotSignUp(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	updated, err := s.ShiftService.Cancel(c, c.Param("shiftId"), c.Param("slotId"), u.UID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toShiftResponse(*updated))
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campCrew/services/campmap"
)

// GetCurrentCampMap (GET /camp-map)
func (s Server) GetCurrentCampMap(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	m, err := s.MapService.GetCurrent(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetCampMap (GET /camp-maps/{year})
func (s Server) GetCampMap(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	m, err := s.MapService.Get(c, year)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UploadCampMapImage (POST /camp-maps/{year}/image) — creates or resets the
// year's map; any previous spot list for the year is dropped.
func (s Server) UploadCampMapImage(c *gin.Context) {
	admin, ok := s.requireAdmin(c)
	if !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "file is required"})
		return
	}
	f, err := header.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()

	m, err := s.MapService.UploadImage(c, year, header.Filename, header.Header.Get("Content-Type"), f, admin.UID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ReplaceCampMapSpots (PUT /camp-maps/{year}/spots) — wholesale replacement,
// last editor save wins.
func (s Server) ReplaceCampMapSpots(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var req ReplaceSpotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if err := s.MapService.ReplaceSpots(c, year, toSpots(req.Spots)); err != nil {
		s.fail(c, err)
		return
	}
	m, err := s.MapService.Get(c, year)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// AddCampMapSpot (POST /camp-maps/{year}/spots) — place a spot from a pixel
// click on the rendered image.
func (s Server) AddCampMapSpot(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	var req AddSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	m, err := s.MapService.AddSpotAt(c, year, req.ClickX, req.ClickY, req.ImageWidth, req.ImageHeight)
	if err != nil {
		if errors.Is(err, campmap.ErrBadImageSize) {
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// DeleteCampMapSpot (DELETE /camp-maps/{year}/spots/{number})
func (s Server) DeleteCampMapSpot(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "spot number must be an integer"})
		return
	}
	if err := s.MapService.DeleteSpot(c, year, number); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCampMapSpot (GET /camp-maps/{year}/spots/{number}) — the member-facing
// lookup: resolve a spot (typically the viewer's tent number) to its marker
// and assigned member.
func (s Server) GetCampMapSpot(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "spot number must be an integer"})
		return
	}
	m, err := s.MapService.Get(c, year)
	if err != nil {
		s.fail(c, err)
		return
	}
	spot := m.SpotByNumber(number)
	if spot == nil {
		c.JSON(http.StatusNotFound, Error{Error: campmap.ErrSpotNotFound.Error()})
		return
	}

	resp := SpotResponse{Spot: *spot}
	if spot.AssignedTo != nil {
		member, err := s.UserService.GetByUID(c, *spot.AssignedTo)
		if err == nil {
			resp.AssignedMember = member
		}
	}
	c.JSON(http.StatusOK, resp)
}

// AssignCampMapSpot (PUT /camp-maps/{year}/spots/{number}/assignment)
func (s Server) AssignCampMapSpot(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	year, ok := yearParam(c)
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "spot number must be an integer"})
		return
	}
	var req AssignSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if err := s.MapService.Assign(c, year, number, req.AssignedTo); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "year must be an integer"})
		return 0, false
	}
	return year, true
}

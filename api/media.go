package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ListMedia (GET /media?year=2024)
func (s Server) ListMedia(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: "year must be an integer"})
			return
		}
		year = parsed
	}
	items, err := s.MediaService.GetAll(c, year)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListMediaYears (GET /media/years)
func (s Server) ListMediaYears(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	years, err := s.MediaService.Years(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// UploadMedia (POST /media) — multipart: file, plus optional year and
// description fields. Year defaults to the current year.
func (s Server) UploadMedia(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "file is required"})
		return
	}

	year := time.Now().Year()
	if raw := c.PostForm("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: "year must be an integer"})
			return
		}
		year = parsed
	}

	f, err := header.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()

	contentType := header.Header.Get("Content-Type")
	m, err := s.MediaService.Upload(c, year, u.UID, header.Filename, contentType, c.PostForm("description"), f)
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// DeleteMedia (DELETE /media/{mediaId}) — admins, or the uploader removing
// their own item.
func (s Server) DeleteMedia(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	mediaID := c.Param("mediaId")
	m, err := s.MediaService.Get(c, mediaID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !u.IsAdmin() && m.UploadedBy != u.UID {
		c.JSON(http.StatusForbidden, Error{Error: "cannot delete another member's media"})
		return
	}
	if err := s.MediaService.Delete(c, mediaID); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

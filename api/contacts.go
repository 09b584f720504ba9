package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campCrew/services/contact"
)

// SubmitContact (POST /contacts) — the one public write: all three intake
// forms land here, distinguished by the type tag.
func (s Server) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	created, err := s.ContactService.Submit(c, toSubmission(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListContacts (GET /contacts?filter=pending)
func (s Server) ListContacts(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	filter := contact.Filter(c.DefaultQuery("filter", string(contact.FilterAll)))
	if !filter.IsValid() {
		c.JSON(http.StatusBadRequest, Error{Error: "filter must be all, pending or handled"})
		return
	}
	submissions, err := s.ContactService.GetAll(c, filter)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// SetContactHandled (PUT /contacts/{contactId}/handled)
func (s Server) SetContactHandled(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	var req HandledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if err := s.ContactService.SetHandled(c, c.Param("contactId"), req.Handled); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteContact (DELETE /contacts/{contactId})
func (s Server) DeleteContact(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	if err := s.ContactService.Delete(c, c.Param("contactId")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campCrew/services/user"
)

// ListUsers (GET /users)
func (s Server) ListUsers(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	users, err := s.UserService.GetAll(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser (GET /users/{uid})
func (s Server) GetUser(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	u, err := s.UserService.GetByUID(c, c.Param("uid"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUser (PATCH /users/{uid}) — members edit their own profile, admins
// edit anyone's.
func (s Server) UpdateUser(c *gin.Context) {
	caller, ok := s.currentUser(c)
	if !ok {
		return
	}
	uid := c.Param("uid")
	if caller.UID != uid && !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, Error{Error: "cannot edit another member's profile"})
		return
	}

	var update user.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if err := s.UserService.UpdateProfile(c, uid, update); err != nil {
		s.fail(c, err)
		return
	}
	updated, err := s.UserService.GetByUID(c, uid)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetUserRole (PUT /users/{uid}/role)
func (s Server) SetUserRole(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if !req.Role.IsValid() {
		c.JSON(http.StatusBadRequest, Error{Error: "role must be member or admin"})
		return
	}
	if err := s.UserService.SetRole(c, c.Param("uid"), req.Role); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignTent (PUT /users/{uid}/tent) — tent number and the camp-map spot
// assignment are independent records; this touches only the member profile.
func (s Server) AssignTent(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	var req AssignTentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if err := s.UserService.AssignTentNumber(c, c.Param("uid"), req.TentNumber); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

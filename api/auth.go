package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register (POST /auth/register)
func (s Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	session, err := s.AuthService.Register(c, req.Email, req.Password, req.DisplayName)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Login (POST /auth/login)
func (s Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	session, err := s.AuthService.SignIn(c, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// LoginWithHub (POST /auth/hub)
func (s Server) LoginWithHub(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	session, err := s.AuthService.SignInWithBridge(c, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetMe (GET /auth/me)
func (s Server) GetMe(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}

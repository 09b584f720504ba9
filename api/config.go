package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campCrew/services/siteconfig"
)

// GetSiteConfig (GET /config/site) — public: the links and packing list show
// on pages that render before sign-in.
func (s Server) GetSiteConfig(c *gin.Context) {
	config, err := s.ConfigService.Get(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// UpdateSiteConfig (PUT /config/site)
func (s Server) UpdateSiteConfig(c *gin.Context) {
	if _, ok := s.requireAdmin(c); !ok {
		return
	}
	var config siteconfig.Config
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}
	if err := s.ConfigService.Update(c, &config); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

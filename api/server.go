package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"campCrew/services/auth"
	"campCrew/services/campmap"
	"campCrew/services/contact"
	"campCrew/services/media"
	"campCrew/services/shift"
	"campCrew/services/siteconfig"
	"campCrew/services/user"
	"campCrew/validator"
)

type Server struct {
	AuthService    auth.Service
	UserService    user.Service
	ShiftService   shift.Service
	MapService     campmap.Service
	MediaService   media.Service
	ContactService contact.Service
	ConfigService  siteconfig.Service
}

func NewServer(
	authService auth.Service,
	userService user.Service,
	shiftService shift.Service,
	mapService campmap.Service,
	mediaService media.Service,
	contactService contact.Service,
	configService siteconfig.Service,
) Server {
	return Server{
		AuthService:    authService,
		UserService:    userService,
		ShiftService:   shiftService,
		MapService:     mapService,
		MediaService:   mediaService,
		ContactService: contactService,
		ConfigService:  configService,
	}
}

func (s Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", s.GetPing)

	r.POST("/auth/register", s.Register)
	r.POST("/auth/login", s.Login)
	r.POST("/auth/hub", s.LoginWithHub)
	r.GET("/auth/me", s.GetMe)

	r.GET("/users", s.ListUsers)
	r.GET("/users/:uid", s.GetUser)
	r.PATCH("/users/:uid", s.UpdateUser)
	r.PUT("/users/:uid/role", s.SetUserRole)
	r.PUT("/users/:uid/tent", s.AssignTent)

	r.GET("/shifts", s.ListShifts)
	r.GET("/shifts/:shiftId", s.GetShift)
	r.POST("/shifts", s.CreateShift)
	r.PUT("/shifts/:shiftId", s.UpdateShift)
	r.DELETE("/shifts/:shiftId", s.DeleteShift)
	r.POST("/shifts/:shiftId/slots/:slotId/signup", s.SignUpForSlot)
	r.DELETE("/shifts/:shiftId/slots/:slotId/signup", s.CancelSlotSignUp)

	r.GET("/camp-map", s.GetCurrentCampMap)
	r.GET("/camp-maps/:year", s.GetCampMap)
	r.POST("/camp-maps/:year/image", s.UploadCampMapImage)
	r.PUT("/camp-maps/:year/spots", s.ReplaceCampMapSpots)
	r.POST("/camp-maps/:year/spots", s.AddCampMapSpot)
	r.GET("/camp-maps/:year/spots/:number", s.GetCampMapSpot)
	r.DELETE("/camp-maps/:year/spots/:number", s.DeleteCampMapSpot)
	r.PUT("/camp-maps/:year/spots/:number/assignment", s.AssignCampMapSpot)

	r.GET("/media", s.ListMedia)
	r.GET("/media/years", s.ListMediaYears)
	r.POST("/media", s.UploadMedia)
	r.DELETE("/media/:mediaId", s.DeleteMedia)

	r.POST("/contacts", s.SubmitContact)
	r.GET("/contacts", s.ListContacts)
	r.PUT("/contacts/:contactId/handled", s.SetContactHandled)
	r.DELETE("/contacts/:contactId", s.DeleteContact)

	r.GET("/config/site", s.GetSiteConfig)
	r.PUT("/config/site", s.UpdateSiteConfig)
}

// GetPing (GET /ping)
func (Server) GetPing(c *gin.Context) {
	c.JSON(http.StatusOK, Pong{Ping: "pong"})
}

// currentUID returns the session uid stashed by the request validator.
func currentUID(c *gin.Context) (string, bool) {
	access, ok := validator.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Error{Error: "not signed in"})
		return "", false
	}
	return access.UID, true
}

// currentUser resolves the session to a fresh member record.
func (s Server) currentUser(c *gin.Context) (*user.User, bool) {
	uid, ok := currentUID(c)
	if !ok {
		return nil, false
	}
	u, err := s.UserService.GetByUID(c, uid)
	if err != nil {
		if errors.Is(err, user.NotFound) {
			c.JSON(http.StatusUnauthorized, Error{Error: "no member profile for session"})
			return nil, false
		}
		s.fail(c, err)
		return nil, false
	}
	return u, true
}

// requireAdmin re-reads the member's role from the directory so a revoked
// role takes effect on the next request.
func (s Server) requireAdmin(c *gin.Context) (*user.User, bool) {
	u, ok := s.currentUser(c)
	if !ok {
		return nil, false
	}
	if !u.IsAdmin() {
		c.JSON(http.StatusForbidden, Error{Error: "admin role required"})
		return nil, false
	}
	return u, true
}

// fail maps service errors onto HTTP statuses and logs the rest.
func (s Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.NotFound),
		errors.Is(err, shift.NotFound),
		errors.Is(err, campmap.NotFound),
		errors.Is(err, media.NotFound),
		errors.Is(err, contact.NotFound),
		errors.Is(err, shift.ErrSlotNotFound),
		errors.Is(err, campmap.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, Error{Error: err.Error()})
	case errors.Is(err, shift.ErrSlotTaken),
		errors.Is(err, shift.ErrSlotPreAssigned),
		errors.Is(err, shift.ErrNotSlotHolder):
		c.JSON(http.StatusConflict, Error{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Error{Error: err.Error()})
	default:
		slog.With("error", err.Error()).Error("request failed")
		c.JSON(http.StatusInternalServerError, Error{Error: "internal error"})
	}
}

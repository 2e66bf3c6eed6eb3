package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylocoin/dashboard/internal/client/guard"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
	"github.com/stylocoin/dashboard/internal/client/session"
)

type sessionResponse struct {
	IsLoading       bool         `json:"isLoading"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsAdmin         bool         `json:"isAdmin"`
	KeepLoggedIn    bool         `json:"keepLoggedIn"`
	User            *models.User `json:"user"`

	Token *session.TokenInfo `json:"token,omitempty"`
}

func currentSession(c *gin.Context) sessionResponse {
	snap := services.AuthFrom(c.Request.Context()).Snapshot()
	resp := sessionResponse{
		IsLoading:       snap.IsLoading,
		IsAuthenticated: snap.IsAuthenticated(),
		IsAdmin:         snap.IsAdmin(),
		KeepLoggedIn:    snap.KeepLoggedIn,
		User:            snap.User,
	}
	if snap.IsAuthenticated() {
		info := session.InspectToken(snap.Token)
		resp.Token = &info
	}
	return resp
}

func (s *Server) sessionState(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c))
}

func (s *Server) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": name})
	}
}

func (s *Server) signIn(c *gin.Context) {
	var form models.SignInForm
	if !bindJSON(c, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		respondError(c, err)
		return
	}

	auth := services.AuthFrom(c.Request.Context())
	if !auth.SignIn(c.Request.Context(), form.Username, form.Password, form.KeepLoggedIn) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"session":  currentSession(c),
		"redirect": guard.LandingPath(auth.IsAdmin()),
	})
}

func (s *Server) signUp(c *gin.Context) {
	var form models.SignUpForm
	if !bindJSON(c, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		respondError(c, err)
		return
	}

	res := services.AuthFrom(c.Request.Context()).SignUp(c.Request.Context(), form.Request())
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) signOut(c *gin.Context) {
	services.AuthFrom(c.Request.Context()).SignOut(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) updateProfile(c *gin.Context) {
	var form models.ProfileForm
	if !bindJSON(c, &form) {
		return
	}
	u, err := s.dash.Users.UpdateProfile(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

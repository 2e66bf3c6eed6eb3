package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
)

func (s *Server) adminHome(c *gin.Context) {
	h, err := s.dash.AdminHome(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) users(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.User], error) {
		return s.dash.Users.List(c.Request.Context(), q)
	})(c)
}

func (s *Server) adminDeposits(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.Deposit], error) {
		return s.dash.Deposits.ListAll(c.Request.Context(), q)
	})(c)
}

func (s *Server) confirmDeposit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := s.dash.Deposits.Confirm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) createPackage(c *gin.Context) {
	var p models.MiningPackage
	if !bindJSON(c, &p) {
		return
	}
	created, err := s.dash.Mining.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p models.MiningPackage
	if !bindJSON(c, &p) {
		return
	}
	p.ID = id
	updated, err := s.dash.Mining.Update(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.dash.Mining.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) adminTickets(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.SupportTicket], error) {
		return s.dash.Tickets.ListAll(c.Request.Context(), q)
	})(c)
}

func (s *Server) closeTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	t, err := s.dash.Tickets.Close(c.Request.Context(), id, body.Reply)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) adminIncome(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.IncomeSummary], error) {
		return s.dash.Income.List(c.Request.Context(), q)
	})(c)
}

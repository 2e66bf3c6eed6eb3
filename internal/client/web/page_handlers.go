package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
)

// list adapts a paged service method into a handler.
func list[T any](fetch func(*gin.Context, services.ListQuery) (models.Page[T], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := bindList(c)
		if !ok {
			return
		}
		page, err := fetch(c, q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func (s *Server) home(c *gin.Context) {
	h, err := s.dash.Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) wallet(c *gin.Context) {
	w, err := s.dash.Wallets.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) transactions(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.WalletTransaction], error) {
		return s.dash.Wallets.Transactions(c.Request.Context(), q)
	})(c)
}

func (s *Server) deposits(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.Deposit], error) {
		return s.dash.Deposits.List(c.Request.Context(), q)
	})(c)
}

func (s *Server) createDeposit(c *gin.Context) {
	var req models.DepositRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := s.dash.Deposits.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (s *Server) income(c *gin.Context) {
	sum, err := s.dash.Income.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) packages(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.MiningPackage], error) {
		return s.dash.Mining.List(c.Request.Context(), q)
	})(c)
}

func (s *Server) tickets(c *gin.Context) {
	list(func(c *gin.Context, q services.ListQuery) (models.Page[models.SupportTicket], error) {
		return s.dash.Tickets.List(c.Request.Context(), q)
	})(c)
}

func (s *Server) createTicket(c *gin.Context) {
	var req models.TicketRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := s.dash.Tickets.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

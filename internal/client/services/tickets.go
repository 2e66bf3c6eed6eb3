package services

import (
	"context"
	"slices"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/logging"
)

type TicketService struct {
	api      client.SupportTicketsAPI
	auth     AuthService
	log      logging.Logger
	pageSize int
	cache    pageCache[models.SupportTicket]
}

func NewTicketService(api client.SupportTicketsAPI, auth AuthService, pageSize int, log logging.Logger) *TicketService {
	return &TicketService{api: api, auth: auth, pageSize: pageSize, log: log.With("component", "tickets")}
}

// List shows the signed-in user's tickets.
func (s *TicketService) List(ctx context.Context, q ListQuery) (models.Page[models.SupportTicket], error) {
	me, err := currentUser(s.auth)
	if err != nil {
		return models.Page[models.SupportTicket]{}, err
	}
	q.UserID = me.ID
	return s.list(ctx, q)
}

// ListAll is the admin inbox.
func (s *TicketService) ListAll(ctx context.Context, q ListQuery) (models.Page[models.SupportTicket], error) {
	q.UserID = 0
	return s.list(ctx, q)
}

func (s *TicketService) list(ctx context.Context, q ListQuery) (models.Page[models.SupportTicket], error) {
	q = q.normalize(s.pageSize)
	page, err := s.api.ListSupportTickets(ctx, q.request())
	if err != nil {
		return models.Page[models.SupportTicket]{}, err
	}
	page = refine(page, q)
	s.cache.set(page)
	return page, nil
}

func (s *TicketService) Create(ctx context.Context, req models.TicketRequest) (*models.SupportTicket, error) {
	if _, err := currentUser(s.auth); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	t, err := s.api.CreateSupportTicket(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.update(func(items []models.SupportTicket) ([]models.SupportTicket, bool) {
		return slices.Insert(items, 0, *t), true
	})
	s.log.Info(ctx, "ticket opened", "id", t.ID)
	return t, nil
}

// Close marks a ticket closed with an optional reply, updating the cached
// page before the backend answers.
func (s *TicketService) Close(ctx context.Context, id int64, reply string) (*models.SupportTicket, error) {
	upd := models.TicketStatusUpdate{Status: models.TicketClosed, Reply: reply}
	prev, cached := s.cache.update(func(items []models.SupportTicket) ([]models.SupportTicket, bool) {
		return replaceWhere(items,
			func(t models.SupportTicket) bool { return t.ID == id },
			func(t models.SupportTicket) models.SupportTicket {
				t.Status = upd.Status
				if reply != "" {
					t.Reply = reply
				}
				return t
			})
	})

	t, err := s.api.UpdateSupportTicketStatus(ctx, id, upd)
	if err != nil {
		if cached {
			s.cache.restore(prev)
		}
		return nil, err
	}
	if t == nil {
		closed, ok := s.cache.find(func(x models.SupportTicket) bool { return x.ID == id })
		if !ok {
			closed = models.SupportTicket{ID: id, Reply: reply}
		}
		closed.Status = upd.Status
		t = &closed
	} else {
		s.cache.update(func(items []models.SupportTicket) ([]models.SupportTicket, bool) {
			return replaceWhere(items,
				func(x models.SupportTicket) bool { return x.ID == id },
				func(models.SupportTicket) models.SupportTicket { return *t })
		})
	}
	s.log.Info(ctx, "ticket closed", "id", id)
	return t, nil
}

func (s *TicketService) Cached() models.Page[models.SupportTicket] { return s.cache.get() }

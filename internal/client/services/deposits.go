package services

import (
	"context"
	"slices"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/logging"
)

type DepositService struct {
	api      client.DepositsAPI
	auth     AuthService
	log      logging.Logger
	pageSize int
	cache    pageCache[models.Deposit]
}

func NewDepositService(api client.DepositsAPI, auth AuthService, pageSize int, log logging.Logger) *DepositService {
	return &DepositService{api: api, auth: auth, pageSize: pageSize, log: log.With("component", "deposits")}
}

// List shows the signed-in user's own deposits.
func (s *DepositService) List(ctx context.Context, q ListQuery) (models.Page[models.Deposit], error) {
	me, err := currentUser(s.auth)
	if err != nil {
		return models.Page[models.Deposit]{}, err
	}
	q.UserID = me.ID
	return s.list(ctx, q)
}

// ListAll is the admin queue over every user's deposits.
func (s *DepositService) ListAll(ctx context.Context, q ListQuery) (models.Page[models.Deposit], error) {
	q.UserID = 0
	return s.list(ctx, q)
}

func (s *DepositService) list(ctx context.Context, q ListQuery) (models.Page[models.Deposit], error) {
	q = q.normalize(s.pageSize)
	page, err := s.api.ListDeposits(ctx, q.request())
	if err != nil {
		return models.Page[models.Deposit]{}, err
	}
	page = refine(page, q)
	s.cache.set(page)
	return page, nil
}

// Create submits a deposit and puts it at the head of the cached page.
func (s *DepositService) Create(ctx context.Context, req models.DepositRequest) (*models.Deposit, error) {
	if _, err := currentUser(s.auth); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	d, err := s.api.CreateDeposit(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.update(func(items []models.Deposit) ([]models.Deposit, bool) {
		return slices.Insert(items, 0, *d), true
	})
	s.log.Info(ctx, "deposit submitted", "id", d.ID, "amount", d.Amount)
	return d, nil
}

// Confirm marks a pending deposit confirmed. The cached page shows the new
// status at once and is put back if the backend refuses.
func (s *DepositService) Confirm(ctx context.Context, id int64) (*models.Deposit, error) {
	prev, cached := s.cache.update(func(items []models.Deposit) ([]models.Deposit, bool) {
		return replaceWhere(items,
			func(d models.Deposit) bool { return d.ID == id },
			func(d models.Deposit) models.Deposit { d.Status = models.DepositConfirmed; return d })
	})

	d, err := s.api.ConfirmDeposit(ctx, id)
	if err != nil {
		if cached {
			s.cache.restore(prev)
		}
		return nil, err
	}
	if d == nil {
		confirmed, ok := s.cache.find(func(x models.Deposit) bool { return x.ID == id })
		if !ok {
			confirmed = models.Deposit{ID: id}
		}
		confirmed.Status = models.DepositConfirmed
		d = &confirmed
	}
	s.cache.update(func(items []models.Deposit) ([]models.Deposit, bool) {
		return replaceWhere(items,
			func(x models.Deposit) bool { return x.ID == id },
			func(models.Deposit) models.Deposit { return *d })
	})
	s.log.Info(ctx, "deposit confirmed", "id", id)
	return d, nil
}

// Cached returns the page as currently displayed.
func (s *DepositService) Cached() models.Page[models.Deposit] { return s.cache.get() }

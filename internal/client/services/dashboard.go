package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/logging"
)

// Dashboard groups every service a page can use.
type Dashboard struct {
	Auth     AuthService
	Users    *UserService
	Wallets  *WalletService
	Deposits *DepositService
	Income   *IncomeService
	Mining   *MiningService
	Tickets  *TicketService

	api client.Client
	log logging.Logger
}

func NewDashboard(api client.Client, auth AuthService, pageSize int, log logging.Logger) *Dashboard {
	return &Dashboard{
		Auth:     auth,
		Users:    NewUserService(api, auth, pageSize, log),
		Wallets:  NewWalletService(api, api, auth, pageSize),
		Deposits: NewDepositService(api, auth, pageSize, log),
		Income:   NewIncomeService(api, auth, pageSize),
		Mining:   NewMiningService(api, pageSize, log),
		Tickets:  NewTicketService(api, auth, pageSize, log),
		api:      api,
		log:      log,
	}
}

// Ping reports whether the backend is reachable.
func (d *Dashboard) Ping(ctx context.Context) error { return d.api.Ping(ctx) }

// Home is the member landing view.
type Home struct {
	User   models.User                           `json:"user"`
	Wallet *models.Wallet                        `json:"wallet"`
	Income *models.IncomeSummary                 `json:"income"`
	Recent models.Page[models.WalletTransaction] `json:"recent"`
}

// Home loads the member landing view. The wallet is required; income and
// recent activity are shown empty when they fail.
func (d *Dashboard) Home(ctx context.Context) (*Home, error) {
	me, err := currentUser(d.Auth)
	if err != nil {
		return nil, err
	}
	h := &Home{User: *me}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := d.Wallets.Summary(gctx)
		h.Wallet = w
		return err
	})
	g.Go(func() error {
		inc, err := d.Income.Summary(gctx)
		if err != nil {
			d.log.Warn(ctx, "income summary unavailable", "error", err)
			return nil
		}
		h.Income = inc
		return nil
	})
	g.Go(func() error {
		recent, err := d.Wallets.Transactions(gctx, ListQuery{Page: 1, Size: 5})
		if err != nil {
			d.log.Warn(ctx, "recent transactions unavailable", "error", err)
			recent = models.Page[models.WalletTransaction]{Items: []models.WalletTransaction{}, Page: 1, Size: 5}
		}
		h.Recent = recent
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return h, nil
}

// AdminHome holds the totals shown on the admin landing view.
type AdminHome struct {
	Users           int64 `json:"users"`
	Deposits        int64 `json:"deposits"`
	PendingDeposits int64 `json:"pendingDeposits"`
	OpenTickets     int64 `json:"openTickets"`
	MiningPackages  int64 `json:"miningPackages"`
}

// AdminHome collects the admin totals concurrently. Any failure fails the view.
func (d *Dashboard) AdminHome(ctx context.Context) (*AdminHome, error) {
	if !d.Auth.IsAdmin() {
		return nil, client.ErrUnauthorized
	}
	one := models.PageRequest{Page: 1, Size: 1}
	pending := one
	pending.Status = models.DepositPending
	open := one
	open.Status = models.TicketOpen

	var h AdminHome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		h.Users, err = total(d.api.ListUsers(gctx, one))
		return err
	})
	g.Go(func() (err error) {
		h.Deposits, err = total(d.api.ListDeposits(gctx, one))
		return err
	})
	g.Go(func() (err error) {
		h.PendingDeposits, err = total(d.api.ListDeposits(gctx, pending))
		return err
	})
	g.Go(func() (err error) {
		h.OpenTickets, err = total(d.api.ListSupportTickets(gctx, open))
		return err
	})
	g.Go(func() (err error) {
		h.MiningPackages, err = total(d.api.ListMiningPackages(gctx, one))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &h, nil
}

func total[T any](p models.Page[T], err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return p.Total, nil
}

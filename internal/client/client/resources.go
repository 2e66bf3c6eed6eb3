package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/stylocoin/dashboard/internal/client/models"
)

const (
	usersPath          = "/api/v1/users"
	walletsPath        = "/api/v1/wallets"
	depositsPath       = "/api/v1/deposits"
	incomeSummaryPath  = "/api/v1/income-summary"
	miningPackagesPath = "/api/v1/mining-packages"
	supportTicketsPath = "/api/v1/support-tickets"
	transactionsPath   = "/api/v1/wallet-transactions"
)

func idPath(base string, id int64, suffix ...string) string {
	p := fmt.Sprintf("%s/%d", base, id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// listPage fetches one page of a list endpoint and records the requested
// paging on the result.
func listPage[T any](ctx context.Context, c *HTTPClient, path string, req models.PageRequest) (models.Page[T], error) {
	body, err := c.getJSON(ctx, path, req.Values())
	if err != nil {
		return models.Page[T]{}, err
	}
	page, err := decodePage[T](body)
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("%s: %w", path, err)
	}
	page.Page, page.Size = req.Page, req.Size
	return page, nil
}

func record[T any](ctx context.Context, c *HTTPClient, method, path string, payload any) (*T, error) {
	body, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		return nil, err
	}
	v, err := decodeRecord[T](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ack sends a mutation whose reply may be the updated record, a bare
// acknowledgement such as {"message":"..."} or an empty body. Only a record
// that carries an id is returned; anything else yields (nil, nil) and the
// caller keeps what it already knows.
func ack[T any](ctx context.Context, c *HTTPClient, method, path string, payload any, id func(*T) int64) (*T, error) {
	body, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	v, err := decodeRecord[T](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if id(v) == 0 {
		return nil, nil
	}
	return v, nil
}

func idOfUser(u *models.User) int64             { return u.ID }
func idOfDeposit(d *models.Deposit) int64       { return d.ID }
func idOfPackage(p *models.MiningPackage) int64 { return p.ID }
func idOfTicket(t *models.SupportTicket) int64  { return t.ID }

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return record[models.User](ctx, c, http.MethodGet, idPath(usersPath, id), nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context, req models.PageRequest) (models.Page[models.User], error) {
	return listPage[models.User](ctx, c, usersPath, req)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, u models.User) (*models.User, error) {
	return ack(ctx, c, http.MethodPut, idPath(usersPath, u.ID), u, idOfUser)
}

func (c *HTTPClient) GetWalletData(ctx context.Context, userID int64) (*models.Wallet, error) {
	return record[models.Wallet](ctx, c, http.MethodGet, idPath(walletsPath, userID), nil)
}

func (c *HTTPClient) ListWallets(ctx context.Context, req models.PageRequest) (models.Page[models.Wallet], error) {
	return listPage[models.Wallet](ctx, c, walletsPath, req)
}

func (c *HTTPClient) ListDeposits(ctx context.Context, req models.PageRequest) (models.Page[models.Deposit], error) {
	return listPage[models.Deposit](ctx, c, depositsPath, req)
}

func (c *HTTPClient) CreateDeposit(ctx context.Context, req models.DepositRequest) (*models.Deposit, error) {
	return record[models.Deposit](ctx, c, http.MethodPost, depositsPath, req)
}

func (c *HTTPClient) ConfirmDeposit(ctx context.Context, id int64) (*models.Deposit, error) {
	return ack(ctx, c, http.MethodPut, idPath(depositsPath, id, "confirm"), nil, idOfDeposit)
}

func (c *HTTPClient) GetIndividualIncomeSummary(ctx context.Context, userID int64) (*models.IncomeSummary, error) {
	return record[models.IncomeSummary](ctx, c, http.MethodGet, idPath(incomeSummaryPath, userID), nil)
}

func (c *HTTPClient) ListIncomeSummaries(ctx context.Context, req models.PageRequest) (models.Page[models.IncomeSummary], error) {
	return listPage[models.IncomeSummary](ctx, c, incomeSummaryPath, req)
}

func (c *HTTPClient) ListMiningPackages(ctx context.Context, req models.PageRequest) (models.Page[models.MiningPackage], error) {
	return listPage[models.MiningPackage](ctx, c, miningPackagesPath, req)
}

func (c *HTTPClient) CreateMiningPackage(ctx context.Context, p models.MiningPackage) (*models.MiningPackage, error) {
	return record[models.MiningPackage](ctx, c, http.MethodPost, miningPackagesPath, p)
}

func (c *HTTPClient) UpdateMiningPackage(ctx context.Context, p models.MiningPackage) (*models.MiningPackage, error) {
	return ack(ctx, c, http.MethodPut, idPath(miningPackagesPath, p.ID), p, idOfPackage)
}

func (c *HTTPClient) DeleteMiningPackage(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, idPath(miningPackagesPath, id), nil, nil)
	return err
}

func (c *HTTPClient) ListSupportTickets(ctx context.Context, req models.PageRequest) (models.Page[models.SupportTicket], error) {
	return listPage[models.SupportTicket](ctx, c, supportTicketsPath, req)
}

func (c *HTTPClient) CreateSupportTicket(ctx context.Context, req models.TicketRequest) (*models.SupportTicket, error) {
	return record[models.SupportTicket](ctx, c, http.MethodPost, supportTicketsPath, req)
}

func (c *HTTPClient) UpdateSupportTicketStatus(ctx context.Context, id int64, upd models.TicketStatusUpdate) (*models.SupportTicket, error) {
	return ack(ctx, c, http.MethodPut, idPath(supportTicketsPath, id, "status"), upd, idOfTicket)
}

func (c *HTTPClient) ListWalletTransactions(ctx context.Context, req models.PageRequest) (models.Page[models.WalletTransaction], error) {
	return listPage[models.WalletTransaction](ctx, c, transactionsPath, req)
}

package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/session"
	"github.com/stylocoin/dashboard/internal/logging"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newSessions(t *testing.T, db *sql.DB) *session.Service {
	t.Helper()
	svc := session.NewService(session.NewStore(db), logging.Nop())
	require.NoError(t, svc.Hydrate(context.Background()))
	return svc
}

func member() models.User {
	return models.User{
		ID:       7,
		Username: "STY000007",
		Name:     "Bob",
		Email:    "bob@example.com",
		Roles:    []models.Role{{ID: 2, Name: "USER"}},
	}
}

func adminUser() models.User {
	return models.User{
		ID:       1,
		Username: "admin",
		Name:     "Root",
		Roles:    []models.Role{{ID: 1, Name: models.RoleAdminUser}},
	}
}

// fakeAPI implements client.Client with canned answers and records calls.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	loginFn    func(ctx context.Context, username, password string) (*client.LoginResponse, error)
	registerFn func(ctx context.Context, req models.RegisterRequest) (*client.RegisterResponse, error)

	user       *models.User
	updateErr  error
	updated    []models.User
	users      models.Page[models.User]
	wallet     *models.Wallet
	walletErr  error
	wallets    models.Page[models.Wallet]
	deposits   models.Page[models.Deposit]
	depositErr error
	income     *models.IncomeSummary
	incomeErr  error
	incomes    models.Page[models.IncomeSummary]
	packages   models.Page[models.MiningPackage]
	packageErr error
	tickets    models.Page[models.SupportTicket]
	ticketErr  error
	txs        models.Page[models.WalletTransaction]
	pingErr    error

	// packageReplyEmpty makes UpdateMiningPackage answer without a record.
	packageReplyEmpty bool

	requests []models.PageRequest
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) record(name string, req ...models.PageRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.requests = append(f.requests, req...)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*client.LoginResponse, error) {
	f.record("Login")
	return f.loginFn(ctx, username, password)
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) (*client.RegisterResponse, error) {
	f.record("Register")
	return f.registerFn(ctx, req)
}

func (f *fakeAPI) GetUser(context.Context, int64) (*models.User, error) {
	f.record("GetUser")
	if f.user == nil {
		return nil, client.ErrNotFound
	}
	return f.user.Clone(), nil
}

func (f *fakeAPI) ListUsers(_ context.Context, req models.PageRequest) (models.Page[models.User], error) {
	f.record("ListUsers", req)
	return f.users, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, u models.User) (*models.User, error) {
	f.record("UpdateUser")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.mu.Lock()
	f.updated = append(f.updated, u)
	f.mu.Unlock()
	u.Roles = nil
	return &u, nil
}

func (f *fakeAPI) GetWalletData(context.Context, int64) (*models.Wallet, error) {
	f.record("GetWalletData")
	return f.wallet, f.walletErr
}

func (f *fakeAPI) ListWallets(_ context.Context, req models.PageRequest) (models.Page[models.Wallet], error) {
	f.record("ListWallets", req)
	return f.wallets, nil
}

func (f *fakeAPI) ListDeposits(_ context.Context, req models.PageRequest) (models.Page[models.Deposit], error) {
	f.record("ListDeposits", req)
	return f.deposits, nil
}

func (f *fakeAPI) CreateDeposit(_ context.Context, req models.DepositRequest) (*models.Deposit, error) {
	f.record("CreateDeposit")
	if f.depositErr != nil {
		return nil, f.depositErr
	}
	return &models.Deposit{ID: 99, Amount: req.Amount, TxHash: req.TxHash, Status: models.DepositPending}, nil
}

func (f *fakeAPI) ConfirmDeposit(_ context.Context, id int64) (*models.Deposit, error) {
	f.record("ConfirmDeposit")
	if f.depositErr != nil {
		return nil, f.depositErr
	}
	return &models.Deposit{ID: id, Status: models.DepositConfirmed}, nil
}

func (f *fakeAPI) GetIndividualIncomeSummary(context.Context, int64) (*models.IncomeSummary, error) {
	f.record("GetIndividualIncomeSummary")
	return f.income, f.incomeErr
}

func (f *fakeAPI) ListIncomeSummaries(_ context.Context, req models.PageRequest) (models.Page[models.IncomeSummary], error) {
	f.record("ListIncomeSummaries", req)
	return f.incomes, nil
}

func (f *fakeAPI) ListMiningPackages(_ context.Context, req models.PageRequest) (models.Page[models.MiningPackage], error) {
	f.record("ListMiningPackages", req)
	return f.packages, nil
}

func (f *fakeAPI) CreateMiningPackage(_ context.Context, p models.MiningPackage) (*models.MiningPackage, error) {
	f.record("CreateMiningPackage")
	if f.packageErr != nil {
		return nil, f.packageErr
	}
	p.ID = 50
	return &p, nil
}

func (f *fakeAPI) UpdateMiningPackage(_ context.Context, p models.MiningPackage) (*models.MiningPackage, error) {
	f.record("UpdateMiningPackage")
	if f.packageErr != nil {
		return nil, f.packageErr
	}
	if f.packageReplyEmpty {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeAPI) DeleteMiningPackage(context.Context, int64) error {
	f.record("DeleteMiningPackage")
	return f.packageErr
}

func (f *fakeAPI) ListSupportTickets(_ context.Context, req models.PageRequest) (models.Page[models.SupportTicket], error) {
	f.record("ListSupportTickets", req)
	return f.tickets, nil
}

func (f *fakeAPI) CreateSupportTicket(_ context.Context, req models.TicketRequest) (*models.SupportTicket, error) {
	f.record("CreateSupportTicket")
	if f.ticketErr != nil {
		return nil, f.ticketErr
	}
	return &models.SupportTicket{ID: 5, Subject: req.Subject, Message: req.Message, Status: models.TicketOpen}, nil
}

func (f *fakeAPI) UpdateSupportTicketStatus(_ context.Context, id int64, upd models.TicketStatusUpdate) (*models.SupportTicket, error) {
	f.record("UpdateSupportTicketStatus")
	if f.ticketErr != nil {
		return nil, f.ticketErr
	}
	return &models.SupportTicket{ID: id, Status: upd.Status, Reply: upd.Reply}, nil
}

func (f *fakeAPI) ListWalletTransactions(_ context.Context, req models.PageRequest) (models.Page[models.WalletTransaction], error) {
	f.record("ListWalletTransactions", req)
	return f.txs, nil
}

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

// signedInAuth returns an AuthService already signed in as u.
func signedInAuth(t *testing.T, api *fakeAPI, u models.User) AuthService {
	t.Helper()
	api.loginFn = func(context.Context, string, string) (*client.LoginResponse, error) {
		return &client.LoginResponse{User: &u, Token: "tok"}, nil
	}
	auth := NewAuthService(api, newSessions(t, setupDB(t)), 0, logging.Nop())
	require.True(t, auth.SignIn(context.Background(), u.Username, "pw", true))
	return auth
}

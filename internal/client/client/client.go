package client

import (
	"context"

	"github.com/stylocoin/dashboard/internal/client/models"
)

// TokenSource yields the bearer token to attach to outgoing requests. An
// empty token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// LoginResponse is the body of a successful POST /api/v1/auth/login.
type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// RegisterResponse is the body of POST /api/v1/auth/register. The backend
// returns the generated username in Message.
type RegisterResponse struct {
	Message string `json:"message"`
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*RegisterResponse, error)
}

type UsersAPI interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, req models.PageRequest) (models.Page[models.User], error)
	UpdateUser(ctx context.Context, u models.User) (*models.User, error)
}

type WalletsAPI interface {
	GetWalletData(ctx context.Context, userID int64) (*models.Wallet, error)
	ListWallets(ctx context.Context, req models.PageRequest) (models.Page[models.Wallet], error)
}

type DepositsAPI interface {
	ListDeposits(ctx context.Context, req models.PageRequest) (models.Page[models.Deposit], error)
	CreateDeposit(ctx context.Context, req models.DepositRequest) (*models.Deposit, error)
	ConfirmDeposit(ctx context.Context, id int64) (*models.Deposit, error)
}

type IncomeAPI interface {
	GetIndividualIncomeSummary(ctx context.Context, userID int64) (*models.IncomeSummary, error)
	ListIncomeSummaries(ctx context.Context, req models.PageRequest) (models.Page[models.IncomeSummary], error)
}

type MiningPackagesAPI interface {
	ListMiningPackages(ctx context.Context, req models.PageRequest) (models.Page[models.MiningPackage], error)
	CreateMiningPackage(ctx context.Context, p models.MiningPackage) (*models.MiningPackage, error)
	UpdateMiningPackage(ctx context.Context, p models.MiningPackage) (*models.MiningPackage, error)
	DeleteMiningPackage(ctx context.Context, id int64) error
}

type SupportTicketsAPI interface {
	ListSupportTickets(ctx context.Context, req models.PageRequest) (models.Page[models.SupportTicket], error)
	CreateSupportTicket(ctx context.Context, req models.TicketRequest) (*models.SupportTicket, error)
	UpdateSupportTicketStatus(ctx context.Context, id int64, upd models.TicketStatusUpdate) (*models.SupportTicket, error)
}

type TransactionsAPI interface {
	ListWalletTransactions(ctx context.Context, req models.PageRequest) (models.Page[models.WalletTransaction], error)
}

// Client is the whole backend surface used by the dashboard.
type Client interface {
	AuthAPI
	UsersAPI
	WalletsAPI
	DepositsAPI
	IncomeAPI
	MiningPackagesAPI
	SupportTicketsAPI
	TransactionsAPI

	Ping(ctx context.Context) error
}

package models

import (
	"strconv"
	"time"
)

// Statuses used by deposits and support tickets.
const (
	DepositPending   = "PENDING"
	DepositConfirmed = "CONFIRMED"
	DepositRejected  = "REJECTED"

	TicketOpen   = "OPEN"
	TicketClosed = "CLOSED"
)

// Wallet is a per-user balance sheet computed by the backend.
type Wallet struct {
	ID              int64     `json:"id,omitempty"`
	UserID          int64     `json:"userId,omitempty"`
	Username        string    `json:"username,omitempty"`
	Address         string    `json:"address,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	Balance         float64   `json:"balance"`
	MiningBalance   float64   `json:"miningBalance"`
	ReferralBalance float64   `json:"referralBalance"`
	TotalDeposit    float64   `json:"totalDeposit"`
	TotalWithdrawal float64   `json:"totalWithdrawal"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

func (w Wallet) SearchFields() []string {
	return []string{w.Username, w.Address, w.Currency}
}

type Deposit struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"userId,omitempty"`
	Username  string    `json:"username,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	TxHash    string    `json:"transactionHash,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func (d Deposit) SearchFields() []string {
	return []string{strconv.FormatInt(d.ID, 10), d.Username, d.TxHash, d.Status, d.Currency}
}

// DepositRequest is the body of a new deposit submission.
type DepositRequest struct {
	Amount   float64 `json:"amount" validate:"gt=0"`
	Currency string  `json:"currency,omitempty"`
	TxHash   string  `json:"transactionHash" validate:"required"`
}

func (r DepositRequest) Validate() error { return validateStruct(r) }

// IncomeSummary aggregates a user's earnings by source.
type IncomeSummary struct {
	UserID         int64   `json:"userId,omitempty"`
	Username       string  `json:"username,omitempty"`
	Period         string  `json:"period,omitempty"`
	DirectIncome   float64 `json:"directIncome"`
	LevelIncome    float64 `json:"levelIncome"`
	BinaryIncome   float64 `json:"binaryIncome"`
	MiningIncome   float64 `json:"miningIncome"`
	ReferralIncome float64 `json:"referralIncome"`
	TotalIncome    float64 `json:"totalIncome"`
}

func (s IncomeSummary) SearchFields() []string {
	return []string{s.Username, s.Period}
}

type MiningPackage struct {
	ID           int64   `json:"id,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price" validate:"gt=0"`
	DailyReturn  float64 `json:"dailyReturn" validate:"gte=0"`
	DurationDays int     `json:"durationDays" validate:"gt=0"`
	Active       bool    `json:"active"`
}

func (p MiningPackage) Validate() error { return validateStruct(p) }

func (p MiningPackage) SearchFields() []string {
	return []string{p.Name, p.Description}
}

type SupportTicket struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"userId,omitempty"`
	Username  string    `json:"username,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func (t SupportTicket) SearchFields() []string {
	return []string{strconv.FormatInt(t.ID, 10), t.Username, t.Subject, t.Status}
}

// TicketRequest opens a new support ticket.
type TicketRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

func (r TicketRequest) Validate() error { return validateStruct(r) }

// TicketStatusUpdate changes a ticket status, optionally with a reply.
type TicketStatusUpdate struct {
	Status string `json:"status"`
	Reply  string `json:"reply,omitempty"`
}

type WalletTransaction struct {
	ID          int64     `json:"id,omitempty"`
	UserID      int64     `json:"userId,omitempty"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Balance     float64   `json:"balance"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

func (t WalletTransaction) SearchFields() []string {
	return []string{t.Type, t.Description}
}

package cli

import (
	"context"
	"fmt"

	"github.com/stylocoin/dashboard/internal/client/guard"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
)

// Home shows the landing page the signed-in user belongs to.
func (a *App) Home(ctx context.Context) error {
	if guard.Landing(a.dash.Auth.IsAdmin()).Target == guard.RouteAdminHome {
		return a.AdminHome(ctx)
	}

	h, err := a.dash.Home(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Hello, %s\n\n", h.User.DisplayName())
	renderWallet(a.out, h.Wallet)
	if h.Income != nil {
		fmt.Fprintln(a.out)
		renderIncome(a.out, h.Income)
	}
	if len(h.Recent.Items) > 0 {
		fmt.Fprintln(a.out, "\nRecent activity")
		renderTransactions(a.out, h.Recent)
	}
	return nil
}

func (a *App) Wallet(ctx context.Context) error {
	w, err := a.dash.Wallets.Summary(ctx)
	if err != nil {
		return err
	}
	renderWallet(a.out, w)
	return nil
}

func (a *App) Transactions(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Wallets.Transactions(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderTransactions(a.out, p)
	return nil
}

func (a *App) Deposits(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Deposits.List(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderDeposits(a.out, p)
	return nil
}

// Deposit submits a new deposit after the transfer has been made on chain.
func (a *App) Deposit(ctx context.Context) error {
	var (
		req models.DepositRequest
		err error
	)
	if req.Amount, err = GetNumber(a.reader, "Amount", a.out); err != nil {
		return err
	}
	if req.Currency, err = getSimpleText(a.reader, "Currency (optional)", a.out); err != nil {
		return err
	}
	if req.TxHash, err = getSimpleText(a.reader, "Transaction hash", a.out); err != nil {
		return err
	}

	d, err := a.dash.Deposits.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deposit #%d submitted, status %s.\n", d.ID, statusOf(d.Status))
	return nil
}

func (a *App) Income(ctx context.Context) error {
	s, err := a.dash.Income.Summary(ctx)
	if err != nil {
		return err
	}
	renderIncome(a.out, s)
	return nil
}

func (a *App) Packages(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Mining.List(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderPackages(a.out, p)
	return nil
}

func (a *App) Tickets(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Tickets.List(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderTickets(a.out, p)
	return nil
}

// Ticket opens a support ticket.
func (a *App) Ticket(ctx context.Context) error {
	var (
		req models.TicketRequest
		err error
	)
	if req.Subject, err = getSimpleText(a.reader, "Subject", a.out); err != nil {
		return err
	}
	if req.Message, err = GetMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	t, err := a.dash.Tickets.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ticket #%d opened.\n", t.ID)
	return nil
}

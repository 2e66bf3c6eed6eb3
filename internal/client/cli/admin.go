package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
)

func (a *App) AdminHome(ctx context.Context) error {
	h, err := a.dash.AdminHome(ctx)
	if err != nil {
		return err
	}
	renderAdminHome(a.out, h)
	return nil
}

func (a *App) Users(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Users.List(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderUsers(a.out, p)
	return nil
}

// AdminDeposits lists deposits of every user. A first argument naming a
// status (pending, confirmed, rejected) filters on the backend.
func (a *App) AdminDeposits(ctx context.Context, args []string) error {
	q := services.ListQuery{}
	if len(args) > 0 {
		switch s := strings.ToUpper(args[0]); s {
		case models.DepositPending, models.DepositConfirmed, models.DepositRejected:
			q.Status = s
			args = args[1:]
		}
	}
	q.Page, q.Search = pageArgs(args)

	p, err := a.dash.Deposits.ListAll(ctx, q)
	if err != nil {
		return err
	}
	renderDeposits(a.out, p)
	return nil
}

func (a *App) ConfirmDeposit(ctx context.Context, args []string) error {
	id, err := idArg(args, "confirm <id>")
	if err != nil {
		return err
	}
	d, err := a.dash.Deposits.Confirm(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deposit #%d is now %s.\n", d.ID, statusOf(d.Status))
	return nil
}

func (a *App) AdminPackages(ctx context.Context, args []string) error {
	return a.Packages(ctx, args)
}

func (a *App) AddPackage(ctx context.Context) error {
	var (
		p   models.MiningPackage
		err error
	)
	if p.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if p.Description, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	if p.Price, err = GetNumber(a.reader, "Price", a.out); err != nil {
		return err
	}
	if p.DailyReturn, err = GetNumber(a.reader, "Daily return %", a.out); err != nil {
		return err
	}
	days, err := GetNumber(a.reader, "Duration in days", a.out)
	if err != nil {
		return err
	}
	p.DurationDays = int(days)
	p.Active = true

	created, err := a.dash.Mining.Create(ctx, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Package #%d %q created.\n", created.ID, created.Name)
	return nil
}

func (a *App) DeletePackage(ctx context.Context, args []string) error {
	id, err := idArg(args, "delete-package <id>")
	if err != nil {
		return err
	}
	if err := a.dash.Mining.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Package #%d deleted.\n", id)
	return nil
}

func (a *App) AdminTickets(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Tickets.ListAll(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderTickets(a.out, p)
	return nil
}

func (a *App) CloseTicket(ctx context.Context, args []string) error {
	id, err := idArg(args, "close-ticket <id>")
	if err != nil {
		return err
	}
	reply, err := GetMultiline(a.reader, "Reply (optional)", a.out)
	if err != nil {
		return err
	}
	t, err := a.dash.Tickets.Close(ctx, id, reply)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ticket #%d is now %s.\n", t.ID, statusOf(t.Status))
	return nil
}

func (a *App) AdminIncome(ctx context.Context, args []string) error {
	page, search := pageArgs(args)
	p, err := a.dash.Income.List(ctx, services.ListQuery{Page: page, Search: search})
	if err != nil {
		return err
	}
	renderIncomeList(a.out, p)
	return nil
}

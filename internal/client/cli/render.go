package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/services"
	"github.com/stylocoin/dashboard/internal/format"
)

var statusOf = format.Status

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func footer[T any](w io.Writer, p models.Page[T]) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "Nothing to show.")
		return
	}
	fmt.Fprintf(w, "Page %d of %d, %d total\n", max(p.Page, 1), p.Pages(), p.Total)
}

func renderProfile(w io.Writer, u *models.User) {
	table(w, "FIELD\tVALUE", func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Username\t%s\n", u.Username)
		fmt.Fprintf(tw, "Name\t%s\n", u.Name)
		fmt.Fprintf(tw, "Email\t%s\n", u.Email)
		fmt.Fprintf(tw, "Mobile\t%s\n", u.Mobile)
		fmt.Fprintf(tw, "Country\t%s\n", u.Country)
		fmt.Fprintf(tw, "Node\t%s\n", u.NodeID)
		fmt.Fprintf(tw, "Referral code\t%s\n", u.ReferralCode)
		fmt.Fprintf(tw, "Confirmed\t%t\n", u.Confirmed)
	})
}

func renderWallet(w io.Writer, wl *models.Wallet) {
	if wl == nil {
		fmt.Fprintln(w, "No wallet yet.")
		return
	}
	table(w, "WALLET\t", func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Address\t%s\n", format.Address(wl.Address))
		fmt.Fprintf(tw, "Balance\t%s\n", format.Amount(wl.Balance, wl.Currency))
		fmt.Fprintf(tw, "Mining\t%s\n", format.Amount(wl.MiningBalance, wl.Currency))
		fmt.Fprintf(tw, "Referral\t%s\n", format.Amount(wl.ReferralBalance, wl.Currency))
		fmt.Fprintf(tw, "Deposited\t%s\n", format.Amount(wl.TotalDeposit, wl.Currency))
		fmt.Fprintf(tw, "Withdrawn\t%s\n", format.Amount(wl.TotalWithdrawal, wl.Currency))
	})
}

func renderIncome(w io.Writer, s *models.IncomeSummary) {
	if s == nil {
		fmt.Fprintln(w, "No income yet.")
		return
	}
	table(w, "INCOME\t", func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Direct\t%s\n", format.Amount(s.DirectIncome, ""))
		fmt.Fprintf(tw, "Level\t%s\n", format.Amount(s.LevelIncome, ""))
		fmt.Fprintf(tw, "Binary\t%s\n", format.Amount(s.BinaryIncome, ""))
		fmt.Fprintf(tw, "Mining\t%s\n", format.Amount(s.MiningIncome, ""))
		fmt.Fprintf(tw, "Referral\t%s\n", format.Amount(s.ReferralIncome, ""))
		fmt.Fprintf(tw, "Total\t%s\n", format.Amount(s.TotalIncome, ""))
	})
}

func renderIncomeList(w io.Writer, p models.Page[models.IncomeSummary]) {
	table(w, "USER\tPERIOD\tDIRECT\tBINARY\tMINING\tTOTAL", func(tw *tabwriter.Writer) {
		for _, s := range p.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Username, s.Period,
				format.Amount(s.DirectIncome, ""), format.Amount(s.BinaryIncome, ""),
				format.Amount(s.MiningIncome, ""), format.Amount(s.TotalIncome, ""))
		}
	})
	footer(w, p)
}

func renderTransactions(w io.Writer, p models.Page[models.WalletTransaction]) {
	table(w, "DATE\tTYPE\tAMOUNT\tBALANCE\tDESCRIPTION", func(tw *tabwriter.Writer) {
		for _, t := range p.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", format.Date(t.CreatedAt), statusOf(t.Type),
				format.Amount(t.Amount, ""), format.Amount(t.Balance, ""), t.Description)
		}
	})
	footer(w, p)
}

func renderDeposits(w io.Writer, p models.Page[models.Deposit]) {
	table(w, "ID\tDATE\tUSER\tAMOUNT\tTX\tSTATUS", func(tw *tabwriter.Writer) {
		for _, d := range p.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", d.ID, format.Date(d.CreatedAt), d.Username,
				format.Amount(d.Amount, d.Currency), format.Address(d.TxHash), statusOf(d.Status))
		}
	})
	footer(w, p)
}

func renderPackages(w io.Writer, p models.Page[models.MiningPackage]) {
	table(w, "ID\tNAME\tPRICE\tDAILY\tDAYS\tACTIVE", func(tw *tabwriter.Writer) {
		for _, m := range p.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%t\n", m.ID, m.Name,
				format.Amount(m.Price, ""), format.Percent(m.DailyReturn), m.DurationDays, m.Active)
		}
	})
	footer(w, p)
}

func renderTickets(w io.Writer, p models.Page[models.SupportTicket]) {
	table(w, "ID\tDATE\tUSER\tSUBJECT\tSTATUS", func(tw *tabwriter.Writer) {
		for _, t := range p.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, format.Date(t.CreatedAt), t.Username, t.Subject, statusOf(t.Status))
		}
	})
	footer(w, p)
}

func renderUsers(w io.Writer, p models.Page[models.User]) {
	table(w, "ID\tUSERNAME\tNAME\tEMAIL\tCOUNTRY\tADMIN", func(tw *tabwriter.Writer) {
		for _, u := range p.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Name, u.Email, u.Country, u.IsAdmin())
		}
	})
	footer(w, p)
}

func renderAdminHome(w io.Writer, h *services.AdminHome) {
	table(w, "OVERVIEW\t", func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Users\t%d\n", h.Users)
		fmt.Fprintf(tw, "Deposits\t%d\n", h.Deposits)
		fmt.Fprintf(tw, "Pending deposits\t%d\n", h.PendingDeposits)
		fmt.Fprintf(tw, "Open tickets\t%d\n", h.OpenTickets)
		fmt.Fprintf(tw, "Mining packages\t%d\n", h.MiningPackages)
	})
}

// describeError turns a command failure into the line shown to the user.
func describeError(err error) string {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		var b strings.Builder
		b.WriteString("Please fix the following:")
		for _, f := range fields {
			fmt.Fprintf(&b, "\n  %s %s", f, verrs[f])
		}
		return b.String()
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrTimeout):
		return "The server is unavailable, try again later."
	case errors.Is(err, client.ErrUnauthorized):
		return "Not allowed: " + err.Error()
	case errors.Is(err, services.ErrNotSignedIn):
		return "Please sign in first (signin)."
	}
	if msg := client.MessageOf(err); msg != "" {
		return "Error: " + msg
	}
	return "Error: " + err.Error()
}

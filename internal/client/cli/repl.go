package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/stylocoin/dashboard/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	view() guard.View

	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	SignOut(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Home(ctx context.Context) error
	Profile(ctx context.Context) error
	Wallet(ctx context.Context) error
	Transactions(ctx context.Context, args []string) error
	Deposits(ctx context.Context, args []string) error
	Deposit(ctx context.Context) error
	Income(ctx context.Context) error
	Packages(ctx context.Context, args []string) error
	Tickets(ctx context.Context, args []string) error
	Ticket(ctx context.Context) error

	AdminHome(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	AdminDeposits(ctx context.Context, args []string) error
	ConfirmDeposit(ctx context.Context, args []string) error
	AdminPackages(ctx context.Context, args []string) error
	AddPackage(ctx context.Context) error
	DeletePackage(ctx context.Context, args []string) error
	AdminTickets(ctx context.Context, args []string) error
	CloseTicket(ctx context.Context, args []string) error
	AdminIncome(ctx context.Context, args []string) error
}

type command struct {
	// policy gates the command; nil means anyone may run it.
	policy guard.Func
	// guest commands only make sense while signed out.
	guest bool
	run   func(ctx context.Context, args []string) error
}

func noArgs(fn func(context.Context) error) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error { return fn(ctx) }
}

func commandsFor(a execIface) map[string]command {
	public := func(fn func(context.Context) error) command { return command{run: noArgs(fn)} }
	guest := func(fn func(context.Context) error) command {
		return command{policy: guard.Guest, guest: true, run: noArgs(fn)}
	}
	member := func(fn func(context.Context, []string) error) command {
		return command{policy: guard.Protected, run: fn}
	}
	admin := func(fn func(context.Context, []string) error) command {
		return command{policy: guard.AdminOnly, run: fn}
	}

	return map[string]command{
		"signin":   guest(a.SignIn),
		"login":    guest(a.SignIn),
		"signup":   guest(a.SignUp),
		"register": guest(a.SignUp),
		"signout":  public(a.SignOut),
		"logout":   public(a.SignOut),
		"whoami":   public(a.WhoAmI),

		"home":         member(noArgs(a.Home)),
		"profile":      member(noArgs(a.Profile)),
		"wallet":       member(noArgs(a.Wallet)),
		"transactions": member(a.Transactions),
		"deposits":     member(a.Deposits),
		"deposit":      member(noArgs(a.Deposit)),
		"income":       member(noArgs(a.Income)),
		"packages":     member(a.Packages),
		"tickets":      member(a.Tickets),
		"ticket":       member(noArgs(a.Ticket)),

		"admin":          admin(noArgs(a.AdminHome)),
		"users":          admin(a.Users),
		"admin-deposits": admin(a.AdminDeposits),
		"confirm":        admin(a.ConfirmDeposit),
		"admin-packages": admin(a.AdminPackages),
		"add-package":    admin(noArgs(a.AddPackage)),
		"delete-package": admin(a.DeletePackage),
		"admin-tickets":  admin(a.AdminTickets),
		"close-ticket":   admin(a.CloseTicket),
		"admin-income":   admin(a.AdminIncome),
	}
}

// runREPL starts a read–eval–print loop for the dashboard.
//
// Each line is split into a command and its arguments. Before a gated
// command runs, a fresh guard.Mount decides against the current session:
// Loading prints a notice, a redirect to the sign-in page asks the user to
// sign in, a redirect home reports that admin access is needed.
//
// Errors returned by command handlers are printed and the loop continues.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	cmds := commandsFor(a)
	for {
		printlnFn(fmt.Sprintf("stylo %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a.view()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := cmds[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if cmd.policy != nil && !admit(cmd, a.view()) {
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			printlnFn(describeError(err))
		}
	}
}

// admit runs the command's guard on a fresh mount and reports whether the
// command may run, telling the user why not otherwise.
func admit(cmd command, v guard.View) bool {
	d := guard.NewMount(cmd.policy).Decide(v)
	switch d.Kind {
	case guard.Loading:
		printlnFn("Session is still loading, try again in a moment.")
		return false
	case guard.Redirect:
		switch {
		case d.Target == guard.RouteSignIn:
			printlnFn("Please sign in first (signin).")
		case cmd.guest:
			printlnFn("Already signed in (try 'home' or 'signout').")
		default:
			printlnFn("Admin access is required.")
		}
		return false
	}
	return true
}

func helpText(v guard.View) string {
	switch {
	case !v.IsAuthenticated:
		return "Available commands: signin, signup, whoami, exit"
	case v.IsAdmin:
		return "Available commands: home, profile, whoami, users, admin-deposits, confirm <id>, " +
			"admin-packages, add-package, delete-package <id>, admin-tickets, close-ticket <id>, " +
			"admin-income, wallet, transactions, deposits, income, packages, tickets, signout, exit"
	default:
		return "Available commands: home, profile, whoami, wallet, transactions [page] [search], " +
			"deposits [page] [search], deposit, income, packages [page] [search], " +
			"tickets [page] [search], ticket, signout, exit"
	}
}

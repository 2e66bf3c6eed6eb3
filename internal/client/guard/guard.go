// Package guard decides what a route shows for a given session: a loading
// placeholder, a redirect or the page itself.
package guard

import "github.com/stylocoin/dashboard/internal/client/session"

// Route paths shared by every front end.
const (
	RouteRoot      = "/"
	RouteSignIn    = "/signin"
	RouteSignUp    = "/signup"
	RouteHome      = "/home"
	RouteAdminHome = "/admin/home"
)

type Kind int

const (
	Loading Kind = iota
	Redirect
	Render
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	}
	return "unknown"
}

// Decision is the outcome of a guard. Target is set only for Redirect.
type Decision struct {
	Kind   Kind
	Target string
}

var (
	loading = Decision{Kind: Loading}
	render  = Decision{Kind: Render}
)

func redirect(to string) Decision { return Decision{Kind: Redirect, Target: to} }

// View is the part of the session guards look at.
type View struct {
	IsLoading       bool
	IsAuthenticated bool
	IsAdmin         bool
}

func FromState(s session.State) View {
	return View{IsLoading: s.IsLoading, IsAuthenticated: s.IsAuthenticated(), IsAdmin: s.IsAdmin()}
}

// Protected lets any signed-in user through.
func Protected(v View) Decision {
	switch {
	case v.IsLoading:
		return loading
	case !v.IsAuthenticated:
		return redirect(RouteSignIn)
	}
	return render
}

// AdminOnly sends signed-out visitors to sign in and members to their home.
func AdminOnly(v View) Decision {
	switch {
	case v.IsLoading:
		return loading
	case !v.IsAuthenticated:
		return redirect(RouteSignIn)
	case !v.IsAdmin:
		return redirect(RouteHome)
	}
	return render
}

// Guest is used by the sign-in and sign-up pages: a signed-in user is sent
// to their landing page instead.
func Guest(v View) Decision {
	switch {
	case v.IsLoading:
		return loading
	case v.IsAuthenticated:
		return Landing(v.IsAdmin)
	}
	return render
}

// Root resolves the bare "/" path.
func Root(v View) Decision {
	switch {
	case v.IsLoading:
		return loading
	case !v.IsAuthenticated:
		return redirect(RouteSignIn)
	}
	return Landing(v.IsAdmin)
}

// Landing picks the home for a signed-in user. It has no loading state and
// is only consulted once the session is resolved.
func Landing(isAdmin bool) Decision { return redirect(LandingPath(isAdmin)) }

// LandingPath is where a user goes after signing in.
func LandingPath(isAdmin bool) string {
	if isAdmin {
		return RouteAdminHome
	}
	return RouteHome
}

// Func is any of the guards above.
type Func func(View) Decision

// Mount follows one mounted route through session changes. Once it has
// resolved it never reports Loading again; navigating creates a new Mount.
type Mount struct {
	guard    Func
	resolved bool
}

func NewMount(g Func) *Mount { return &Mount{guard: g} }

func (m *Mount) Decide(v View) Decision {
	if m.resolved {
		v.IsLoading = false
	}
	d := m.guard(v)
	if d.Kind != Loading {
		m.resolved = true
	}
	return d
}

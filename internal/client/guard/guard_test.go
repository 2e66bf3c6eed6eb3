package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/session"
)

var (
	hydrating = View{IsLoading: true}
	anonymous = View{}
	member    = View{IsAuthenticated: true}
	admin     = View{IsAuthenticated: true, IsAdmin: true}
)

func TestGuards(t *testing.T) {
	tests := []struct {
		name  string
		guard Func
		view  View
		want  Decision
	}{
		{"protected loading", Protected, hydrating, Decision{Kind: Loading}},
		{"protected anonymous", Protected, anonymous, Decision{Kind: Redirect, Target: RouteSignIn}},
		{"protected member", Protected, member, Decision{Kind: Render}},
		{"protected admin", Protected, admin, Decision{Kind: Render}},

		{"admin loading", AdminOnly, hydrating, Decision{Kind: Loading}},
		{"admin anonymous", AdminOnly, anonymous, Decision{Kind: Redirect, Target: RouteSignIn}},
		{"admin member", AdminOnly, member, Decision{Kind: Redirect, Target: RouteHome}},
		{"admin admin", AdminOnly, admin, Decision{Kind: Render}},

		{"guest anonymous", Guest, anonymous, Decision{Kind: Render}},
		{"guest member", Guest, member, Decision{Kind: Redirect, Target: RouteHome}},
		{"guest admin", Guest, admin, Decision{Kind: Redirect, Target: RouteAdminHome}},

		{"root loading", Root, hydrating, Decision{Kind: Loading}},
		{"root anonymous", Root, anonymous, Decision{Kind: Redirect, Target: RouteSignIn}},
		{"root admin", Root, admin, Decision{Kind: Redirect, Target: RouteAdminHome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard(tt.view))
		})
	}
}

func TestLanding(t *testing.T) {
	assert.Equal(t, Decision{Kind: Redirect, Target: RouteAdminHome}, Landing(true))
	assert.Equal(t, Decision{Kind: Redirect, Target: RouteHome}, Landing(false))
}

// A visitor hits an admin page before hydration finishes and turns out to be
// a plain member.
func TestMount_AdminPageHydratingMember(t *testing.T) {
	m := NewMount(AdminOnly)

	assert.Equal(t, Loading, m.Decide(hydrating).Kind)
	assert.Equal(t, Decision{Kind: Redirect, Target: RouteHome}, m.Decide(member))
	// a late loading snapshot cannot put the mount back into loading
	assert.Equal(t, Decision{Kind: Redirect, Target: RouteSignIn}, m.Decide(hydrating))
}

func TestMount_FreshMountStartsOver(t *testing.T) {
	first := NewMount(Protected)
	assert.Equal(t, Render, first.Decide(member).Kind)

	second := NewMount(Protected)
	assert.Equal(t, Loading, second.Decide(hydrating).Kind)
}

func TestFromState(t *testing.T) {
	assert.Equal(t, hydrating, FromState(session.State{IsLoading: true}))
	assert.Equal(t, anonymous, FromState(session.State{}))

	u := &models.User{Roles: []models.Role{{Name: models.RoleAdminUser}}}
	assert.Equal(t, admin, FromState(session.State{User: u}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "redirect", Redirect.String())
	assert.Equal(t, "render", Render.String())
}

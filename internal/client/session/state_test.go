package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylocoin/dashboard/internal/client/models"
)

func admin() models.User {
	return models.User{ID: 1, Username: "ADM1", Roles: []models.Role{{Name: models.RoleAdminUser}}}
}

func TestReduce(t *testing.T) {
	loading := State{IsLoading: true}
	u := sampleUser()
	signedIn := State{User: &u, Token: "tok", KeepLoggedIn: true}

	tests := []struct {
		name   string
		from   State
		action Action
		check  func(t *testing.T, got State)
	}{
		{
			name:   "hydrated with nothing resolves loading",
			from:   loading,
			action: Hydrated(Restored{}),
			check: func(t *testing.T, got State) {
				assert.False(t, got.IsLoading)
				assert.False(t, got.IsAuthenticated())
			},
		},
		{
			name:   "hydrated with session",
			from:   loading,
			action: Hydrated(Restored{Authenticated: true, User: &u, Token: "tok", Flag: FlagAbsent}),
			check: func(t *testing.T, got State) {
				assert.False(t, got.IsLoading)
				assert.True(t, got.IsAuthenticated())
				assert.True(t, got.KeepLoggedIn)
				assert.Equal(t, "tok", got.Token)
			},
		},
		{
			name:   "hydrated ignores unauthenticated user",
			from:   loading,
			action: Hydrated(Restored{Authenticated: false, User: &u, Token: "tok", Flag: FlagFalse}),
			check: func(t *testing.T, got State) {
				assert.False(t, got.IsAuthenticated())
				assert.Empty(t, got.Token)
			},
		},
		{
			name:   "signed in",
			from:   State{},
			action: SignedIn(admin(), "jwt", false),
			check: func(t *testing.T, got State) {
				assert.True(t, got.IsAuthenticated())
				assert.True(t, got.IsAdmin())
				assert.False(t, got.KeepLoggedIn)
				assert.Equal(t, "jwt", got.Token)
			},
		},
		{
			name:   "signed in without user is ignored",
			from:   State{},
			action: Action{Type: ActionSignedIn, Token: "jwt"},
			check: func(t *testing.T, got State) {
				assert.False(t, got.IsAuthenticated())
				assert.Empty(t, got.Token)
			},
		},
		{
			name:   "signed out clears everything",
			from:   signedIn,
			action: SignedOut(),
			check: func(t *testing.T, got State) {
				assert.Equal(t, State{}, got)
			},
		},
		{
			name:   "profile updated replaces user and keeps token",
			from:   signedIn,
			action: ProfileUpdated(admin()),
			check: func(t *testing.T, got State) {
				assert.Equal(t, "ADM1", got.User.Username)
				assert.True(t, got.IsAdmin())
				assert.Equal(t, "tok", got.Token)
				assert.True(t, got.KeepLoggedIn)
			},
		},
		{
			name:   "profile updated while signed out is a no-op",
			from:   State{},
			action: ProfileUpdated(admin()),
			check: func(t *testing.T, got State) {
				assert.False(t, got.IsAuthenticated())
			},
		},
		{
			name:   "unknown action keeps state",
			from:   signedIn,
			action: Action{Type: "NOPE"},
			check: func(t *testing.T, got State) {
				assert.Equal(t, signedIn, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Reduce(tt.from, tt.action))
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	u := sampleUser()
	from := State{User: &u, Token: "tok"}

	_ = Reduce(from, ProfileUpdated(admin()))
	_ = Reduce(from, SignedOut())

	require.NotNil(t, from.User)
	assert.Equal(t, "STY000011", from.User.Username)
	assert.Equal(t, "tok", from.Token)
}

func TestReduce_NeverReturnsToLoading(t *testing.T) {
	s := Reduce(State{IsLoading: true}, Hydrated(Restored{}))
	for _, a := range []Action{SignedIn(admin(), "t", true), ProfileUpdated(sampleUser()), SignedOut(), Hydrated(Restored{})} {
		s = Reduce(s, a)
		assert.False(t, s.IsLoading, a.Type)
	}
}

func TestState_IsAdminFollowsRoles(t *testing.T) {
	u := sampleUser()
	s := State{User: &u}
	assert.False(t, s.IsAdmin())

	s = Reduce(s, ProfileUpdated(admin()))
	assert.True(t, s.IsAdmin())

	s = Reduce(s, ProfileUpdated(sampleUser()))
	assert.False(t, s.IsAdmin())
}

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylocoin/dashboard/internal/client/repositories/metadata"
	"github.com/stylocoin/dashboard/internal/logging"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewStore(setupDB(t)), logging.Nop())
}

func TestService_StartsLoading(t *testing.T) {
	s := newService(t)
	snap := s.Snapshot()
	assert.True(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestService_HydrateRestoresOnce(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	require.NoError(t, s.Store().Save(ctx, sampleUser(), true, "tok"))

	require.NoError(t, s.Hydrate(ctx))
	snap := s.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.True(t, snap.IsAuthenticated())
	assert.Equal(t, "tok", s.Token())

	require.NoError(t, s.Store().Clear(ctx))
	require.NoError(t, s.Hydrate(ctx))
	assert.True(t, s.Snapshot().IsAuthenticated(), "second hydrate must be a no-op")
}

func TestService_HydrateAfterSignInKeepsSignIn(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	require.NoError(t, s.Store().Save(ctx, sampleUser(), true, "old"))

	s.Dispatch(SignedIn(admin(), "new", true))
	require.NoError(t, s.Hydrate(ctx))

	assert.Equal(t, "ADM1", s.Snapshot().User.Username)
	assert.Equal(t, "new", s.Token())
}

func TestService_HydrateErrorStillResolvesLoading(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, KeyUser, []byte("garbage")))
	s := NewService(NewStore(db), logging.Nop())

	err := s.Hydrate(ctx)
	require.Error(t, err)
	snap := s.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated())
}

func TestService_SubscribersSeeEveryChange(t *testing.T) {
	s := newService(t)

	var seen []ActionType
	var states []State
	cancel := s.Subscribe(func(st State) {
		states = append(states, st)
		switch {
		case st.IsAuthenticated():
			seen = append(seen, ActionSignedIn)
		default:
			seen = append(seen, ActionSignedOut)
		}
	})

	s.Dispatch(SignedIn(sampleUser(), "tok", true))
	s.Dispatch(SignedOut())
	cancel()
	s.Dispatch(SignedIn(admin(), "tok2", true))

	assert.Equal(t, []ActionType{ActionSignedIn, ActionSignedOut}, seen)
	require.Len(t, states, 2)
	assert.Equal(t, "tok", states[0].Token)
}

func TestService_SubscriberCanReadSnapshot(t *testing.T) {
	s := newService(t)
	var inner State
	s.Subscribe(func(State) { inner = s.Snapshot() })

	s.Dispatch(SignedIn(admin(), "tok", true))
	assert.True(t, inner.IsAdmin())
}

func TestService_SnapshotsAreIsolated(t *testing.T) {
	s := newService(t)
	s.Dispatch(SignedIn(sampleUser(), "tok", true))

	snap := s.Snapshot()
	snap.User.Roles[0].Name = "ADMIN_USER"
	snap.User.Name = "Mallory"

	fresh := s.Snapshot()
	assert.False(t, fresh.IsAdmin())
	assert.Equal(t, "Alice", fresh.User.Name)
}

func TestService_CancelOnlyRemovesOwnSubscription(t *testing.T) {
	s := newService(t)
	var a, b int
	cancelA := s.Subscribe(func(State) { a++ })
	s.Subscribe(func(State) { b++ })

	cancelA()
	cancelA()
	s.Dispatch(SignedOut())

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

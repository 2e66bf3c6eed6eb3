package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/repositories/metadata"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleUser() models.User {
	return models.User{
		ID:        11,
		Username:  "STY000011",
		Name:      "Alice",
		Email:     "alice@example.com",
		NodeID:    "N-11",
		Confirmed: true,
		Roles:     []models.Role{{ID: 1, Name: "USER"}},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(setupDB(t))
	ctx := context.Background()
	u := sampleUser()

	require.NoError(t, store.Save(ctx, u, true, "tok-1"))

	r, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, r.Authenticated)
	assert.Equal(t, FlagTrue, r.Flag)
	assert.Equal(t, &u, r.User)
	assert.Equal(t, "tok-1", r.Token)
	assert.True(t, r.KeepLoggedIn())
}

func TestStore_LoadTriState(t *testing.T) {
	userJSON := []byte(`{"id":11,"username":"STY000011"}`)

	tests := []struct {
		name     string
		seed     map[string][]byte
		wantAuth bool
		wantFlag Flag
	}{
		{name: "empty store", seed: nil, wantAuth: false, wantFlag: FlagAbsent},
		{name: "user and flag true", seed: map[string][]byte{KeyUser: userJSON, KeyKeepLoggedIn: []byte("true")}, wantAuth: true, wantFlag: FlagTrue},
		{name: "user and no flag", seed: map[string][]byte{KeyUser: userJSON}, wantAuth: true, wantFlag: FlagAbsent},
		{name: "user and flag false", seed: map[string][]byte{KeyUser: userJSON, KeyKeepLoggedIn: []byte("false")}, wantAuth: false, wantFlag: FlagFalse},
		{name: "user and garbage flag", seed: map[string][]byte{KeyUser: userJSON, KeyKeepLoggedIn: []byte("yes")}, wantAuth: false, wantFlag: FlagInvalid},
		{name: "flag true without user", seed: map[string][]byte{KeyKeepLoggedIn: []byte("true"), KeyToken: []byte("tok")}, wantAuth: false, wantFlag: FlagTrue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupDB(t)
			repo := metadata.NewSQLiteRepository(db)
			ctx := context.Background()
			for k, v := range tt.seed {
				require.NoError(t, repo.Set(ctx, k, v))
			}

			r, err := NewStore(db).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAuth, r.Authenticated)
			assert.Equal(t, tt.wantFlag, r.Flag)
			if tt.wantAuth {
				require.NotNil(t, r.User)
				assert.Equal(t, "STY000011", r.User.Username)
			}
		})
	}
}

func TestStore_SaveFalseThenReload(t *testing.T) {
	store := NewStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleUser(), false, "tok"))

	r, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, r.Authenticated)
	assert.Equal(t, FlagFalse, r.Flag)
}

func TestStore_SaveWithoutTokenKeepsPreviousToken(t *testing.T) {
	store := NewStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleUser(), true, "tok-1"))
	u := sampleUser()
	u.Name = "Alice Smith"
	require.NoError(t, store.Save(ctx, u, true, ""))

	r, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", r.Token)
	assert.Equal(t, "Alice Smith", r.User.Name)
}

func TestStore_ClearRemovesOnlySessionKeys(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	repo := metadata.NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "ui.page_size", []byte("25")))
	require.NoError(t, store.Save(ctx, sampleUser(), true, "tok"))
	require.NoError(t, store.Clear(ctx))

	r, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, r.Authenticated)
	assert.Nil(t, r.User)
	assert.Empty(t, r.Token)
	assert.Equal(t, FlagAbsent, r.Flag)

	v, err := repo.Get(ctx, "ui.page_size")
	require.NoError(t, err)
	assert.Equal(t, []byte("25"), v)
}

func TestStore_CorruptUserIsNotAuthenticated(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, KeyUser, []byte("{not json")))

	r, err := NewStore(db).Load(ctx)
	require.ErrorContains(t, err, "corrupt user record")
	assert.False(t, r.Authenticated)
	assert.Nil(t, r.User)
}

func TestStore_SaveRollsBackOnPartialFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO metadata").WithArgs(KeyUser, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO metadata").WithArgs(KeyKeepLoggedIn, []byte("true")).WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = NewStore(db).Save(context.Background(), sampleUser(), true, "tok")
	require.ErrorContains(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ClearRunsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM metadata WHERE key IN").
		WithArgs(KeyUser, KeyKeepLoggedIn, KeyToken).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, NewStore(db).Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Package session owns the signed-in identity of the dashboard: how it is
// persisted between runs (Store), what a snapshot of it looks like (State),
// how it changes (Reduce) and who gets told when it does (Service).
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/repositories/metadata"
	"github.com/stylocoin/dashboard/internal/dbx"
)

// Storage keys. All three live under the same prefix.
const (
	keyPrefix       = "session."
	KeyUser         = keyPrefix + "user"
	KeyKeepLoggedIn = keyPrefix + "keep_logged_in"
	KeyToken        = keyPrefix + "token"
)

// Flag is the persisted keep-logged-in value, which has more than two states.
type Flag int

const (
	FlagAbsent Flag = iota
	FlagTrue
	FlagFalse
	// FlagInvalid is any stored text other than "true" or "false".
	FlagInvalid
)

func (f Flag) String() string {
	switch f {
	case FlagAbsent:
		return "absent"
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "invalid"
	}
}

func parseFlag(raw []byte, present bool) Flag {
	switch {
	case !present:
		return FlagAbsent
	case string(raw) == "true":
		return FlagTrue
	case string(raw) == "false":
		return FlagFalse
	default:
		return FlagInvalid
	}
}

func flagValue(keep bool) []byte {
	if keep {
		return []byte("true")
	}
	return []byte("false")
}

// Restored is what Load found on disk.
type Restored struct {
	Authenticated bool
	User          *models.User
	Token         string
	Flag          Flag
}

// KeepLoggedIn reports the effective keep-logged-in preference. An absent
// flag counts as true.
func (r Restored) KeepLoggedIn() bool {
	return r.Flag == FlagTrue || r.Flag == FlagAbsent
}

// Store persists the session in the metadata table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Load restores a previous session. It is authenticated when a user record
// exists and the keep-logged-in flag is "true" or missing altogether; a
// missing flag is how a freshly registered or partially written session looks.
func (s *Store) Load(ctx context.Context) (Restored, error) {
	values, err := s.repo(s.db).List(ctx, keyPrefix)
	if err != nil {
		return Restored{}, fmt.Errorf("load session: %w", err)
	}

	rawFlag, hasFlag := values[KeyKeepLoggedIn]
	r := Restored{
		Flag:  parseFlag(rawFlag, hasFlag),
		Token: string(values[KeyToken]),
	}

	rawUser, hasUser := values[KeyUser]
	if !hasUser || len(rawUser) == 0 {
		return r, nil
	}
	var u models.User
	if err := json.Unmarshal(rawUser, &u); err != nil {
		return r, fmt.Errorf("load session: corrupt user record: %w", err)
	}
	r.User = &u
	r.Authenticated = r.Flag == FlagTrue || r.Flag == FlagAbsent
	return r, nil
}

// Save writes the user and the flag, and the token when it is not empty,
// in one transaction.
func (s *Store) Save(ctx context.Context, user models.User, keepLoggedIn bool, token string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyUser, rawUser); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyKeepLoggedIn, flagValue(keepLoggedIn)); err != nil {
			return err
		}
		if token != "" {
			return repo.Set(ctx, KeyToken, []byte(token))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the three session keys. Other metadata is left alone.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, KeyUser, KeyKeepLoggedIn, KeyToken)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

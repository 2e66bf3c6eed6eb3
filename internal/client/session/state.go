package session

import (
	"github.com/stylocoin/dashboard/internal/client/models"
)

// State is an immutable snapshot of the session. Copies handed out by
// Service never share memory with its internal state.
type State struct {
	User         *models.User `json:"user"`
	Token        string       `json:"-"`
	KeepLoggedIn bool         `json:"keepLoggedIn"`
	IsLoading    bool         `json:"isLoading"`
}

// IsAuthenticated is true exactly when a user is present.
func (s State) IsAuthenticated() bool { return s.User != nil }

// IsAdmin is derived from the user's roles on every call.
func (s State) IsAdmin() bool { return models.IsAdmin(s.User) }

func (s State) clone() State {
	s.User = s.User.Clone()
	return s
}

type ActionType string

const (
	ActionHydrated       ActionType = "HYDRATED"
	ActionSignedIn       ActionType = "SIGNED_IN"
	ActionSignedOut      ActionType = "SIGNED_OUT"
	ActionProfileUpdated ActionType = "PROFILE_UPDATED"
)

// Action describes one session change. Only the fields relevant to Type are read.
type Action struct {
	Type         ActionType
	User         *models.User
	Token        string
	KeepLoggedIn bool
}

func Hydrated(r Restored) Action {
	a := Action{Type: ActionHydrated}
	if r.Authenticated {
		a.User, a.Token, a.KeepLoggedIn = r.User, r.Token, r.KeepLoggedIn()
	}
	return a
}

func SignedIn(u models.User, token string, keep bool) Action {
	return Action{Type: ActionSignedIn, User: &u, Token: token, KeepLoggedIn: keep}
}

func SignedOut() Action { return Action{Type: ActionSignedOut} }

func ProfileUpdated(u models.User) Action {
	return Action{Type: ActionProfileUpdated, User: &u}
}

// Reduce returns the state that follows s after a. It never mutates s and
// never puts a resolved state back into loading.
func Reduce(s State, a Action) State {
	next := s.clone()
	switch a.Type {
	case ActionHydrated:
		next = State{User: a.User.Clone(), Token: a.Token, KeepLoggedIn: a.KeepLoggedIn}
	case ActionSignedIn:
		if a.User == nil {
			return next
		}
		next = State{User: a.User.Clone(), Token: a.Token, KeepLoggedIn: a.KeepLoggedIn}
	case ActionSignedOut:
		next = State{}
	case ActionProfileUpdated:
		if next.User == nil || a.User == nil {
			return next
		}
		next.User = a.User.Clone()
	}
	return next
}

package services

import (
	"context"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/logging"
)

type UserService struct {
	api      client.UsersAPI
	auth     AuthService
	log      logging.Logger
	pageSize int
}

func NewUserService(api client.UsersAPI, auth AuthService, pageSize int, log logging.Logger) *UserService {
	return &UserService{api: api, auth: auth, pageSize: pageSize, log: log}
}

func currentUser(auth AuthService) (*models.User, error) {
	snap := auth.Snapshot()
	if !snap.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}
	return snap.User, nil
}

// Profile fetches the signed-in user's record from the backend and refreshes
// the session with it.
func (s *UserService) Profile(ctx context.Context) (*models.User, error) {
	me, err := currentUser(s.auth)
	if err != nil {
		return nil, err
	}
	fresh, err := s.api.GetUser(ctx, me.ID)
	if err != nil {
		return nil, err
	}
	if len(fresh.Roles) == 0 {
		fresh.Roles = me.Roles
	}
	if err := s.auth.UpdateUser(ctx, *fresh); err != nil {
		s.log.Warn(ctx, "profile not saved locally", "error", err)
	}
	return fresh, nil
}

// UpdateProfile merges form into the current user, sends the full record to
// the backend and then replaces the session user with the result.
func (s *UserService) UpdateProfile(ctx context.Context, form models.ProfileForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	me, err := currentUser(s.auth)
	if err != nil {
		return nil, err
	}

	merged := me.WithProfile(form)
	saved, err := s.api.UpdateUser(ctx, merged)
	if err != nil {
		return nil, err
	}

	final := merged
	if saved != nil && saved.ID != 0 {
		final = *saved
		if len(final.Roles) == 0 {
			final.Roles = merged.Roles
		}
	}
	if err := s.auth.UpdateUser(ctx, final); err != nil {
		return nil, err
	}
	return &final, nil
}

// List is the admin user directory.
func (s *UserService) List(ctx context.Context, q ListQuery) (models.Page[models.User], error) {
	q = q.normalize(s.pageSize)
	page, err := s.api.ListUsers(ctx, q.request())
	if err != nil {
		return models.Page[models.User]{}, err
	}
	return refine(page, q), nil
}

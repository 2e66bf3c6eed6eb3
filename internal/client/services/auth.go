// Package services contains the application services of the StyloCoin
// dashboard. This file defines the authentication service, which keeps the
// backend, the persisted session and the in-memory session in step.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/session"
	"github.com/stylocoin/dashboard/internal/logging"
)

// DefaultAuthTimeout bounds sign-in and sign-up requests.
const DefaultAuthTimeout = 25 * time.Second

// SignUpResult is the outcome of a registration attempt. On success Username
// holds the login generated by the backend.
type SignUpResult struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

// AuthService defines the authentication operations of the dashboard.
//
// Contract:
//   - SignIn: authenticate, persist the session and publish it. Any failure
//     (network, timeout, non-2xx, missing user or token) yields false.
//   - SignUp: register; the backend's message is the generated username.
//   - SignOut: forget the session in memory and on disk, without contacting
//     the backend.
//   - UpdateUser: replace the current user wholesale.
//   - Snapshot / IsAdmin / Subscribe / Hydrate: read and follow the session.
//
// Only UpdateUser and Hydrate return errors; nothing else fails loudly.
type AuthService interface {
	SignIn(ctx context.Context, username, password string, keepLoggedIn bool) bool
	SignUp(ctx context.Context, req models.RegisterRequest) SignUpResult
	SignOut(ctx context.Context)
	UpdateUser(ctx context.Context, user models.User) error

	Snapshot() session.State
	IsAdmin() bool
	Subscribe(fn func(session.State)) (cancel func())
	Hydrate(ctx context.Context) error
}

type authService struct {
	api      client.AuthAPI
	sessions *session.Service
	timeout  time.Duration
	log      logging.Logger
}

// NewAuthService binds an AuthService to the backend and the session service.
// A non-positive timeout means DefaultAuthTimeout.
func NewAuthService(api client.AuthAPI, sessions *session.Service, timeout time.Duration, log logging.Logger) AuthService {
	if timeout <= 0 {
		timeout = DefaultAuthTimeout
	}
	return &authService{api: api, sessions: sessions, timeout: timeout, log: log.With("component", "auth")}
}

func (a *authService) SignIn(ctx context.Context, username, password string, keepLoggedIn bool) bool {
	reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.api.Login(reqCtx, username, password)
	if err != nil {
		a.log.Warn(ctx, "sign in failed", "username", username, "error", err)
		return false
	}
	if resp == nil || resp.User == nil || resp.Token == "" {
		a.log.Warn(ctx, "sign in response incomplete", "username", username,
			"has_user", resp != nil && resp.User != nil, "has_token", resp != nil && resp.Token != "")
		return false
	}

	if err := a.sessions.Store().Save(ctx, *resp.User, keepLoggedIn, resp.Token); err != nil {
		a.log.Warn(ctx, "session not persisted", "error", err)
	}
	a.sessions.Dispatch(session.SignedIn(*resp.User, resp.Token, keepLoggedIn))
	a.log.Info(ctx, "signed in", "username", resp.User.Username, "admin", resp.User.IsAdmin())
	return true
}

func (a *authService) SignUp(ctx context.Context, req models.RegisterRequest) SignUpResult {
	reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.api.Register(reqCtx, req)
	if err != nil {
		a.log.Warn(ctx, "sign up failed", "email", req.Email, "error", err)
		msg := client.MessageOf(err)
		if msg == "" {
			msg = "registration failed, please try again"
		}
		return SignUpResult{Success: false, Message: msg}
	}

	username := ""
	if resp != nil {
		username = strings.TrimSpace(resp.Message)
	}
	if username == "" {
		a.log.Warn(ctx, "sign up response carried no username", "email", req.Email)
		return SignUpResult{Success: false}
	}

	a.log.Info(ctx, "signed up", "username", username)
	return SignUpResult{Success: true, Username: username, Message: username}
}

func (a *authService) SignOut(ctx context.Context) {
	a.sessions.Dispatch(session.SignedOut())
	if err := a.sessions.Store().Clear(ctx); err != nil {
		a.log.Error(ctx, "persisted session not cleared", "error", err)
		return
	}
	a.log.Info(ctx, "signed out")
}

func (a *authService) UpdateUser(ctx context.Context, user models.User) error {
	current := a.sessions.Snapshot()
	if !current.IsAuthenticated() {
		return ErrNotSignedIn
	}

	a.sessions.Dispatch(session.ProfileUpdated(user))
	if err := a.sessions.Store().Save(ctx, user, current.KeepLoggedIn, ""); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (a *authService) Snapshot() session.State { return a.sessions.Snapshot() }

func (a *authService) IsAdmin() bool { return a.sessions.Snapshot().IsAdmin() }

func (a *authService) Subscribe(fn func(session.State)) func() { return a.sessions.Subscribe(fn) }

func (a *authService) Hydrate(ctx context.Context) error { return a.sessions.Hydrate(ctx) }

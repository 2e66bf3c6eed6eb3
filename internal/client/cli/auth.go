package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stylocoin/dashboard/internal/client/guard"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/client/session"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

var errSignInFailed = errors.New("sign in failed: check your username and password")

// SignIn prompts for credentials and the keep-logged-in choice. The form is
// validated before anything is sent to the backend.
func (a *App) SignIn(ctx context.Context) error {
	var (
		form models.SignInForm
		err  error
	)
	if form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	if form.KeepLoggedIn, err = getYesNo(a.reader, "Keep me logged in?", a.out); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	if !a.dash.Auth.SignIn(ctx, form.Username, form.Password, form.KeepLoggedIn) {
		return errSignInFailed
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.dash.Auth.Snapshot().User.DisplayName())
	return a.Home(ctx)
}

// SignUp collects the registration form. On success the generated username
// is shown: it is the login to use from now on.
func (a *App) SignUp(ctx context.Context) error {
	var form models.SignUpForm
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Full name", &form.Name},
		{"Email", &form.Email},
		{"Mobile", &form.Mobile},
		{"Country", &form.Country},
		{"Referral code (optional)", &form.ReferralCode},
		{"Position LEFT or RIGHT (optional)", &form.Position},
		{"About you (optional)", &form.About},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	form.Position = strings.ToUpper(form.Position)

	var err error
	if form.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword("Confirm password", a.out); err != nil {
		return err
	}
	if form.AgreeTerms, err = getYesNo(a.reader, "Do you agree to the terms and conditions?", a.out); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		return err
	}

	res := a.dash.Auth.SignUp(ctx, form.Request())
	if !res.Success {
		if res.Message == "" {
			return errors.New("registration failed")
		}
		return errors.New(res.Message)
	}
	fmt.Fprintf(a.out, "Registration complete. Your username is %s\nUse it with your password to sign in.\n", res.Username)
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	if !a.dash.Auth.Snapshot().IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	a.dash.Auth.SignOut(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.dash.Auth.Snapshot()
	if !snap.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	u := snap.User
	role := "member"
	if snap.IsAdmin() {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s (%s), %s\n", u.DisplayName(), u.Username, role)
	fmt.Fprintf(a.out, "Landing page: %s\n", guard.LandingPath(snap.IsAdmin()))

	if info := session.InspectToken(snap.Token); !info.ExpiresAt.IsZero() {
		state := "valid"
		if info.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token expires: %s (%s)\n", info.ExpiresAt.Local().Format(time.DateTime), state)
	}
	return nil
}

// Profile shows the profile and lets the user edit it. Empty answers keep
// the current value.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.dash.Users.Profile(ctx)
	if err != nil {
		return err
	}
	renderProfile(a.out, u)

	edit, err := getYesNo(a.reader, "Edit profile?", a.out)
	if err != nil || !edit {
		return err
	}

	var form models.ProfileForm
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &form.Name},
		{"Email", &form.Email},
		{"Mobile", &form.Mobile},
		{"Country", &form.Country},
		{"About", &form.About},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.label+" (empty keeps current)", a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	updated, err := a.dash.Users.UpdateProfile(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	renderProfile(a.out, updated)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Gilles-knd/galerebuddy/internal/client/models"
	"github.com/Gilles-knd/galerebuddy/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getChoice = GetChoice
var getMultiline = GetMultiline

// fail prints a human-readable message for a failed command and passes the
// error through for callers that want it. The REPL itself ignores it.
func (a *App) fail(what string, err error) error {
	printlnFn(fmt.Sprintf("%s failed: %v", what, err))
	return err
}

// Register prompts for a full profile and creates an account. On success
// the new user is logged in and becomes the current user.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	firstname, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	avatar, err := getSimpleText(a.reader, "Enter avatar URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, models.RegisterRequest{
		Email:     email,
		Password:  string(password),
		Firstname: firstname,
		Name:      name,
		AvatarURL: avatar,
	})
	if err != nil {
		return a.fail("Registration", err)
	}
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Firstname))
	return nil
}

// Login prompts for credentials and authenticates. A failure leaves the
// current session, if any, untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return a.fail("Login", err)
	}
	printlnFn(fmt.Sprintf("Logged in as %s %s.", user.Firstname, user.Name))
	return nil
}

// Logout drops the session, locally and unconditionally.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current identity and how trustworthy it is.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s %s <%s>", u.Firstname, u.Name, u.Email))
	printlnFn(fmt.Sprintf("Role: %s, impact points: %d", u.Role, u.ImpactPoints))
	if a.session.Phase() == session.PhaseOptimistic {
		printlnFn("Identity restored from local cache, not yet confirmed by the server.")
	}
	if exp := a.session.TokenExpiresAt(); exp != nil {
		printlnFn("Token expires at " + exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

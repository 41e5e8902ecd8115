package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nftconsole/internal/client/models"
)

// Register prompts for a username, email and password and creates an
// account. A successful registration starts a session.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	rec, err := a.auth.Register(ctx, models.Registration{Username: username, Email: email, Password: password})
	if err != nil {
		a.log.Warn(ctx, "register failed", "error", err)
		return err
	}
	a.location = destHome
	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(rec))
	return nil
}

// Login prompts for credentials and stores the session on success.
// A failed login leaves any existing session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	rec, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}
	a.location = destHome
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", displayName(rec), rec.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.location = destHome
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the stored identity and, when known, the token expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	rec, ok := a.auth.CurrentUser(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "User:  %s\n", displayName(rec))
	if rec.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", rec.Email)
	}
	fmt.Fprintf(a.out, "Role:  %s\n", rec.Role)
	if exp, ok := rec.ExpiresAt(); ok {
		state := "valid"
		if time.Now().After(exp) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token: %s until %s\n", state, exp.Local().Format(time.DateTime))
	}
	if at, ok := a.sessions.SavedAt(ctx); ok {
		fmt.Fprintf(a.out, "Since: %s\n", at.Local().Format(time.DateTime))
	}
	return nil
}

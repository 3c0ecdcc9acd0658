package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials, authenticates, and opens the
// landing screen for the user's role. Failures are surfaced through the
// notifier by the auth service; the error is returned for the caller's
// benefit only.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	screen, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return a.openScreen(ctx, screen)
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	return nil
}

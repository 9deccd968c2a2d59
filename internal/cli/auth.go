package cli

import (
	"context"
	"errors"
	"fmt"

	"orderdeck/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the credential pair and asks the gate to authenticate.
//
// A mismatch is already surfaced by the gate as a single notification, so
// it is swallowed here; prompting I/O errors are returned. On success the
// dashboard becomes visible, which mounts the board: the order snapshot is
// loaded immediately (a load failure is diagnostic-only and leaves an empty
// board that `refresh` can fill later).
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.gate.Authenticate(ctx, email, string(password)); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Welcome!")
	_ = a.board.Load(ctx)
	return nil
}

// Logout revokes access and discards the board's local view. The remote
// store keeps its orders.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.Logout(ctx); err != nil {
		return err
	}
	a.board.Clear()
	return nil
}

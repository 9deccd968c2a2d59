package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Delete(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Every board command is blocked until the session gate admits the
// operator; before login only "login", "help" and "exit" do anything.
//
//	Not logged in:
//	  - help          — show available commands
//	  - login         — authenticate
//	  - exit | quit   — leave the program
//
//	Logged in:
//	  - (l)ist        — show the order table
//	  - show          — show a single order (interactive id prompt)
//	  - delete        — delete an order after confirmation
//	  - refresh       — re-fetch the order snapshot
//	  - logout        — log out and discard the local view
//	  - exit | quit   — leave the program
//
// Errors returned by command handlers are ignored here; handlers notify or
// log on their own. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("odk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show, delete, refresh, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "l", "list", "show", "delete", "refresh", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			switch cmd {
			case "l", "list":
				_ = a.List(ctx)
			case "show":
				_ = a.Show(ctx)
			case "delete":
				_ = a.Delete(ctx)
			case "refresh":
				_ = a.Refresh(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/nftconsole/internal/client/client"
	"github.com/dmitrijs2005/nftconsole/internal/client/transport"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Admin(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands from reader and dispatches them to a.
//
// Prompt & Commands
//
//	Everyone:
//	  - help              show available commands
//	  - register, login   start a session
//	  - list | l          list marketplace listings
//	  - show <id>         show a single listing
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - whoami, logout
//
//	Admin (guarded):
//	  - admin             dashboard
//	  - create            create a listing
//	  - edit <id>         edit a listing
//	  - delete <id>       delete a listing
//
// Handler errors are reported on w and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "market %s> ", statusFn(ctx))
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin(ctx):
				fmt.Fprintln(w, "Available commands: (l)ist, show <id>, admin, create, edit <id>, delete <id>, whoami, logout, exit")
			case a.isLoggedIn(ctx):
				fmt.Fprintln(w, "Available commands: (l)ist, show <id>, whoami, logout, exit")
			default:
				fmt.Fprintln(w, "Available commands: (l)ist, show <id>, register, login, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "l", "list":
			err = a.List(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "admin":
			err = a.Admin(ctx)
		case "create":
			err = a.Create(ctx)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", describe(err))
		}
	}
}

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "server unavailable, try again later"
	}
	var se *transport.StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

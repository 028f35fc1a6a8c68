package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// execIface is the command surface the REPL needs. *App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	printf(format string, args ...any)
	isLoggedIn() bool
	takeEntry() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Ping(ctx context.Context) error
	Get(ctx context.Context, endpoint string) error
	Delete(ctx context.Context, endpoint string) error
	Send(ctx context.Context, method, endpoint string) error
}

const (
	helpLoggedOut = "Available commands: login, ping, exit"
	helpLoggedIn  = "Available commands: get <path>, post <path>, put <path>, patch <path>, delete <path>, whoami, ping, logout, exit"
)

// runREPL reads commands from reader until EOF, exit/quit, or ctx is
// done. Whenever the session controller has sent the console back to the
// entry path, the login prompt is shown before the next command.
//
// Errors returned by command handlers are ignored here; handlers print
// their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if a.takeEntry() {
			if err := a.Login(ctx); errors.Is(err, io.EOF) {
				return
			}
		}

		a.printf("nf %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				a.printf("%s\n", helpLoggedIn)
			} else {
				a.printf("%s\n", helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "get", "delete", "post", "put", "patch":
			if len(args) != 1 {
				a.printf("Usage: %s <path>\n", cmd)
				continue
			}
			switch cmd {
			case "get":
				_ = a.Get(ctx, args[0])
			case "delete":
				_ = a.Delete(ctx, args[0])
			default:
				_ = a.Send(ctx, strings.ToUpper(cmd), args[0])
			}

		case "exit", "quit":
			a.printf("Bye!\n")
			return

		default:
			a.printf("Unknown command: %s\n", cmd)
		}
	}
}


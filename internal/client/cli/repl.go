package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/photoalbum/internal/client/session"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state() session.State
	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads commands from the reader until EOF, exit or quit and writes
// prompts, help and errors to out. Errors returned by handlers are printed and
// the loop goes on.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	say := func(args ...any) { fmt.Fprintln(out, args...) }

	for {
		if ctx.Err() != nil {
			return
		}
		say(fmt.Sprintf("photoalbum (%s)> ", statusLabel(a.state())))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			say(helpText(a.state()))
		case "home", "status":
			cmdErr = a.Home(ctx)
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "upload":
			cmdErr = a.Upload(ctx, strings.Join(args, " "))
		case "delete":
			cmdErr = a.Delete(ctx, firstArg(args))
		case "exit", "quit":
			say("Bye!")
			return
		default:
			say("Unknown command:", cmd)
		}

		if cmdErr != nil {
			say("Error:", cmdErr)
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

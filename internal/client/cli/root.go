package cli

import (
	"context"
	"time"
)

// settleTimeout bounds how long startup waits for the first session check.
const settleTimeout = 5 * time.Second

// Root greets the user, shows the home view once the session is resolved and
// enters the REPL.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to photoalbum (type 'help' for commands)")
	a.waitForSession(ctx, settleTimeout)
	_ = a.Home(ctx)
	runREPL(ctx, a, a.reader, a.out)
}

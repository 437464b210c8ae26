package cli

import (
	"context"

	"github.com/dmitrijs2005/photoalbum/internal/client/session"
)

// statusLabel is the short form shown in the prompt.
func statusLabel(s session.State) string {
	switch s.Status {
	case session.Authenticated:
		return "logged in"
	case session.Unauthenticated:
		return "logged out"
	default:
		return "checking"
	}
}

// Home is the navbar: it tells the user whether they are logged in and what
// they can do next.
func (a *App) Home(_ context.Context) error {
	s := a.state()
	switch s.Status {
	case session.Authenticated:
		a.println("You are logged in.")
	case session.Unauthenticated:
		a.println("You are not logged in.")
		if s.Reason != "" {
			a.println(s.Reason)
		}
	default:
		a.println("Checking your session...")
	}
	a.println(helpText(s))
	return nil
}

func helpText(s session.State) string {
	if s.Status == session.Authenticated {
		return "Available commands: home, list, upload <path>, delete <id>, logout, help, exit"
	}
	return "Available commands: home, register, login, help, exit"
}

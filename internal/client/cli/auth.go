package cli

import (
	"context"

	"github.com/dmitrijs2005/photoalbum/internal/client/services"
	"github.com/dmitrijs2005/photoalbum/internal/client/session"
	"github.com/dmitrijs2005/photoalbum/internal/client/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register is only offered while logged out.
func (a *App) Register(ctx context.Context) error {
	if a.state().Status == session.Authenticated {
		a.println("You are already logged in. Log out first to register a new account.")
		return nil
	}

	var form validate.Registration
	var err error
	if form.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	form, err = form.Check()
	if err != nil {
		a.println(err.Error())
		return nil
	}

	token, err := a.sess.Auth.Register(ctx, form.FullName, form.Email, form.Password)
	if err != nil {
		a.sess.Logger.Info(ctx, "registration failed", "error", err)
		a.println(services.Message(err))
		return nil
	}

	if err := a.sess.Store.Set(ctx, token); err != nil {
		return err
	}
	a.refreshSession(ctx)
	a.println("Registration successful! You are now logged in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	var form validate.Login
	var err error
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}

	form, err = form.Check()
	if err != nil {
		a.println(err.Error())
		return nil
	}

	token, err := a.sess.Auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		a.sess.Logger.Info(ctx, "login failed", "error", err)
		a.println(services.Message(err))
		return nil
	}

	if err := a.sess.Store.Set(ctx, token); err != nil {
		return err
	}
	a.refreshSession(ctx)
	a.println("Login successful!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Store.Clear(ctx); err != nil {
		return err
	}
	a.refreshSession(ctx)
	a.println("Logged out.")
	return nil
}

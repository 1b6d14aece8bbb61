package cli

import (
	"context"

	"github.com/dmitrijs2005/dashapp/internal/client/forms"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	form := forms.LoginForm{Email: email, Password: password}
	if err := forms.Validate(form); err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", a.session.User().Name)
	if err := a.tasks.Load(ctx); err != nil {
		printlnFn("Could not load tasks:", err.Error())
	}
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	form := forms.SignupForm{Name: name, Email: email, Password: password, Confirm: confirm}
	if err := forms.Validate(form); err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.session.Signup(ctx, name, email, password); err != nil {
		printlnFn("Signup failed:", err.Error())
		return err
	}

	printlnFn("Account created, logged in as", a.session.User().Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

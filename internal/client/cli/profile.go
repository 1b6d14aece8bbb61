package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/dashapp/internal/client/forms"
)

func (a *App) Profile(ctx context.Context) error {
	if err := a.session.Refresh(ctx); err != nil {
		printlnFn("Could not load profile:", err.Error())
		return err
	}

	user := a.session.User()
	printlnFn(fmt.Sprintf("Name:   %s", user.Name))
	printlnFn(fmt.Sprintf("Email:  %s", user.Email))
	if user.Avatar != "" {
		printlnFn(fmt.Sprintf("Avatar: %s", user.Avatar))
	}
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	user := a.session.User()

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", user.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = user.Name
	}

	email, err := GetSimpleText(a.reader, fmt.Sprintf("Enter email [%s]", user.Email), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = user.Email
	}

	form := forms.ProfileForm{Name: name, Email: email}
	if err := forms.Validate(form); err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.profile.Update(ctx, name, email); err != nil {
		printlnFn("Could not update profile:", err.Error())
		return err
	}

	printlnFn("Profile updated")
	return nil
}

func (a *App) Avatar(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Enter path of the image file", a.out)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		printlnFn("Could not open file:", err.Error())
		return err
	}
	defer file.Close()

	if err := a.profile.UploadAvatar(ctx, filepath.Base(path), file); err != nil {
		printlnFn("Could not upload avatar:", err.Error())
		return err
	}

	printlnFn("Avatar updated")
	return nil
}

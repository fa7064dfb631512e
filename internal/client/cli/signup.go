package cli

import (
	"context"
	"fmt"

	"soukclient/internal/client/navigation"
	"soukclient/internal/common"
)

func (a *App) signupScreen(ctx context.Context) bool {
	var f flow

	for a.router.Current() == navigation.ScreenSignup {
		if msg := f.lastError(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}

		choice, err := GetSimpleText(a.reader, a.tr.T("signup")+" — signup | login | exit", a.out)
		if err != nil {
			return true
		}

		switch choice {
		case "exit", "quit":
			return true
		case "login":
			f.abandon()
			a.navigate(navigation.ScreenLogin, nil)
		case "signup", "":
			a.submitSignup(ctx, &f)
		default:
			fmt.Fprintln(a.out, "?", choice)
		}
	}
	return false
}

func (a *App) submitSignup(ctx context.Context, f *flow) {
	comp, ok := f.begin()
	if !ok {
		return
	}

	email, err := GetSimpleText(a.reader, a.tr.T("email"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	password, err := GetPassword(a.tr.T("password"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword(a.tr.T("confirmPassword"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	defer common.WipeByteArray(confirm)

	if err := a.auth.InitialSignup(ctx, email, string(password), string(confirm)); err != nil {
		comp(a.errorMessage(err, "signupFailed"))
		return
	}
	comp("")
}

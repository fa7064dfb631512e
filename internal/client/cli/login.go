package cli

import (
	"context"
	"fmt"

	"soukclient/internal/client/navigation"
	"soukclient/internal/common"
)

// loginScreen renders the login prompt until the router moves elsewhere.
// Returns true when the user wants to leave the program.
func (a *App) loginScreen(ctx context.Context) bool {
	var f flow

	for a.router.Current() == navigation.ScreenLogin {
		if msg := f.lastError(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}

		choice, err := GetSimpleText(a.reader, a.tr.T("login")+" — login | signup | reset | exit", a.out)
		if err != nil {
			return true
		}

		switch choice {
		case "exit", "quit":
			return true
		case "signup":
			f.abandon()
			a.navigate(navigation.ScreenSignup, nil)
		case "reset":
			f.abandon()
			a.navigate(navigation.ScreenReset, nil)
		case "login", "":
			a.submitLogin(ctx, &f)
		default:
			fmt.Fprintln(a.out, "?", choice)
		}
	}
	return false
}

func (a *App) submitLogin(ctx context.Context, f *flow) {
	comp, ok := f.begin()
	if !ok {
		return
	}

	username, err := GetSimpleText(a.reader, a.tr.T("username"), a.out)
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

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		comp(a.errorMessage(err, "loginFailed"))
		return
	}
	comp("")
}

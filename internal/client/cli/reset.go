package cli

import (
	"context"
	"fmt"

	"soukclient/internal/client/navigation"
	"soukclient/internal/common"
)

// resetScreen starts the two-step password reset: it asks the server to
// send a one-time code to the given address.
func (a *App) resetScreen(ctx context.Context) bool {
	var f flow

	for a.router.Current() == navigation.ScreenReset {
		if msg := f.lastError(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}

		choice, err := GetSimpleText(a.reader, a.tr.T("resetPass")+" — send | login | exit", a.out)
		if err != nil {
			return true
		}

		switch choice {
		case "exit", "quit":
			return true
		case "login":
			f.abandon()
			a.navigate(navigation.ScreenLogin, nil)
		case "send", "":
			a.submitResetRequest(ctx, &f)
		default:
			fmt.Fprintln(a.out, "?", choice)
		}
	}
	return false
}

func (a *App) submitResetRequest(ctx context.Context, f *flow) {
	comp, ok := f.begin()
	if !ok {
		return
	}

	email, err := GetSimpleText(a.reader, a.tr.T("email"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}

	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		comp(a.plainErrorMessage(err, "somethingWentWrong"))
		return
	}
	fmt.Fprintln(a.out, a.tr.T("otpSent"))
	comp("")
}

// resetConfirmScreen finishes the reset: the code from the email plus the
// new password. The email travelled here as a navigation parameter.
func (a *App) resetConfirmScreen(ctx context.Context) bool {
	email, _ := a.router.Param(navigation.ParamEmail)

	var f flow

	for a.router.Current() == navigation.ScreenResetOTPConfirm {
		if msg := f.lastError(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}

		choice, err := GetSimpleText(a.reader, a.tr.T("resetPass")+" — confirm | login | exit", a.out)
		if err != nil {
			return true
		}

		switch choice {
		case "exit", "quit":
			return true
		case "login":
			f.abandon()
			a.navigate(navigation.ScreenLogin, nil)
		case "confirm", "":
			a.submitResetConfirm(ctx, &f, email)
		default:
			fmt.Fprintln(a.out, "?", choice)
		}
	}
	return false
}

func (a *App) submitResetConfirm(ctx context.Context, f *flow, email string) {
	comp, ok := f.begin()
	if !ok {
		return
	}

	otp, err := GetSimpleText(a.reader, a.tr.T("otp"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	password, err := GetPassword(a.tr.T("newPassword"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	defer common.WipeByteArray(password)

	if err := a.auth.ConfirmPasswordReset(ctx, email, otp, string(password)); err != nil {
		comp(a.plainErrorMessage(err, "wrongOTP"))
		return
	}
	fmt.Fprintln(a.out, a.tr.T("passwordResetDone"))
	comp("")
}

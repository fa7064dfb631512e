package cli

import (
	"context"
	"fmt"
	"strconv"

	"soukclient/internal/client/models"
	"soukclient/internal/client/navigation"
)

// cities the profile screen offers. The server accepts free-form city
// names; the picker just keeps input consistent.
var cities = []string{
	"Casablanca",
	"Rabat",
	"Marrakech",
	"Fès",
	"Tanger",
	"Agadir",
	"Meknès",
	"Oujda",
}

// additionalInfoScreen completes a pending signup. The pending user id
// arrives as a navigation parameter; the location is obtained once at
// screen entry and reused across submission attempts.
func (a *App) additionalInfoScreen(ctx context.Context) bool {
	userID, _ := a.router.Param(navigation.ParamUserID)

	locationStr := ""
	if coords, err := a.locator.Current(ctx); err != nil {
		fmt.Fprintln(a.out, a.tr.T("locationError"))
	} else {
		locationStr = coords.String()
	}

	var f flow

	for a.router.Current() == navigation.ScreenAdditionalInfo {
		if msg := f.lastError(); msg != "" {
			fmt.Fprintln(a.out, msg)
		}

		choice, err := GetSimpleText(a.reader, a.tr.T("signup")+" — continue | exit", a.out)
		if err != nil {
			return true
		}

		switch choice {
		case "exit", "quit":
			return true
		case "continue", "":
			a.submitProfile(ctx, &f, userID, locationStr)
		default:
			fmt.Fprintln(a.out, "?", choice)
		}
	}
	return false
}

func (a *App) submitProfile(ctx context.Context, f *flow, userID, locationStr string) {
	comp, ok := f.begin()
	if !ok {
		return
	}

	username, err := GetSimpleText(a.reader, a.tr.T("username"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	phone, err := GetSimpleText(a.reader, a.tr.T("phoneNumber"), a.out)
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}
	city, err := a.pickCity()
	if err != nil {
		comp(a.tr.T("somethingWentWrong"))
		return
	}

	draft := models.ProfileDraft{
		ID:          userID,
		Username:    username,
		City:        city,
		PhoneNumber: phone,
		Location:    locationStr,
	}

	if err := a.auth.CompleteProfile(ctx, draft); err != nil {
		comp(a.errorMessage(err, "updateProfileFailed"))
		return
	}
	comp("")
}

// pickCity shows the numbered city list and accepts either a number or a
// literal name. An unrecognized answer yields "", which the flow controller
// rejects with the select-a-city message.
func (a *App) pickCity() (string, error) {
	for i, city := range cities {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, city)
	}
	answer, err := GetSimpleText(a.reader, a.tr.T("city"), a.out)
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(cities) {
			return cities[n-1], nil
		}
		return "", nil
	}
	for _, city := range cities {
		if city == answer {
			return city, nil
		}
	}
	return "", nil
}

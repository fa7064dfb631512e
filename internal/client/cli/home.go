package cli

import (
	"context"
	"fmt"

	"soukclient/internal/client/navigation"
)

// homeScreen lists the categories. The catalog is fetched fresh on every
// visit; "refresh" simply re-enters the screen.
func (a *App) homeScreen(ctx context.Context) bool {
	categories, err := a.catalog.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, a.errorMessage(err, "somethingWentWrong"))
	} else {
		fmt.Fprintln(a.out, a.tr.T("categories"))
		if len(categories) == 0 {
			fmt.Fprintln(a.out, "-")
		}
		for _, c := range categories {
			if c.ImageURL != "" {
				fmt.Fprintf(a.out, "  %d. %s (%s)\n", c.ID, c.Name, c.ImageURL)
			} else {
				fmt.Fprintf(a.out, "  %d. %s\n", c.ID, c.Name)
			}
		}
	}

	for a.router.Current() == navigation.ScreenHome {
		choice, err := GetSimpleText(a.reader, a.tr.T("categories")+" — refresh | logout | exit", a.out)
		if err != nil {
			return true
		}

		switch choice {
		case "exit", "quit":
			return true
		case "refresh", "":
			return false // the screen loop re-enters and re-fetches
		case "logout":
			if err := a.auth.Logout(ctx); err != nil {
				fmt.Fprintln(a.out, a.tr.T("somethingWentWrong"))
			}
		default:
			fmt.Fprintln(a.out, "?", choice)
		}
	}
	return false
}

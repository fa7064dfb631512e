package cli

import (
	"context"
	"fmt"
	"time"

	"soukclient/internal/client/navigation"
	"soukclient/internal/i18n"
)

// bootstrap is the one-time startup gate. It waits for the locale bundle to
// warm up and for the session store read, then keeps the splash visible for
// another SplashMinDuration before resolving the initial screen: Home when
// a token is present, Login otherwise. A storage read failure counts as
// "no token" (fail-open).
func (a *App) bootstrap(ctx context.Context) (navigation.Screen, *i18n.Translator) {
	// Splash. The string table is not loaded yet, so this line stays plain.
	fmt.Fprintln(a.out, "souk client ...")

	type sessionRead struct {
		token string
		err   error
	}
	readCh := make(chan sessionRead, 1)
	go func() {
		token, err := a.sessions.Get(ctx)
		readCh <- sessionRead{token: token, err: err}
	}()

	trCh := make(chan *i18n.Translator, 1)
	go func() {
		trCh <- i18n.New(a.config.Language)
	}()

	read := <-readCh
	tr := <-trCh

	// The splash delay starts only once both the warmup and the storage
	// read have resolved; a slow read extends the splash by the full
	// duration rather than eating into it.
	if a.config.SplashMinDuration > 0 {
		select {
		case <-time.After(a.config.SplashMinDuration):
		case <-ctx.Done():
		}
	}

	token := read.token
	if read.err != nil {
		a.log.Warn(ctx, "session read failed, starting unauthenticated", "err", read.err)
		token = ""
	}

	if token != "" {
		return navigation.ScreenHome, tr
	}
	return navigation.ScreenLogin, tr
}

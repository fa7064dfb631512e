package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"soukclient/internal/client/client"
	"soukclient/internal/client/config"
	"soukclient/internal/client/location"
	"soukclient/internal/client/navigation"
	"soukclient/internal/client/repositories/session"
	"soukclient/internal/client/services"
	"soukclient/internal/client/validation"
	"soukclient/internal/i18n"
	"soukclient/internal/logging"
)

// App wires the terminal screens to the services and owns the process
// lifecycle: bootstrap, screen loop, shutdown.
type App struct {
	config   *config.Config
	log      logging.Logger
	tr       *i18n.Translator
	api      client.Client
	db       *sql.DB
	sessions session.Repository
	router   navigation.Router
	auth     services.AuthService
	catalog  services.CategoryService
	locator  location.Locator
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)

	return &App{
		config:   cfg,
		log:      log,
		api:      client.NewHTTPClient(cfg.ServerBaseURL, log),
		db:       db,
		sessions: session.NewSQLiteRepository(db),
		locator:  location.NewPromptLocator(reader, os.Stdout),
		reader:   reader,
		out:      os.Stdout,
	}, nil
}

// Run drives the application: the bootstrap gate picks the initial screen,
// then the loop renders whatever screen the router points at until the user
// exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	initial, tr := a.bootstrap(ctx)
	a.tr = tr
	a.router = navigation.NewStackRouter(initial, a.log)
	a.auth = services.NewAuthService(a.api, a.sessions, a.router, a.log)
	a.catalog = services.NewCategoryService(a.api, a.sessions, a.log)

	for {
		var quit bool
		switch a.router.Current() {
		case navigation.ScreenLogin:
			quit = a.loginScreen(ctx)
		case navigation.ScreenSignup:
			quit = a.signupScreen(ctx)
		case navigation.ScreenAdditionalInfo:
			quit = a.additionalInfoScreen(ctx)
		case navigation.ScreenReset:
			quit = a.resetScreen(ctx)
		case navigation.ScreenResetOTPConfirm:
			quit = a.resetConfirmScreen(ctx)
		case navigation.ScreenHome:
			quit = a.homeScreen(ctx)
		default:
			return fmt.Errorf("unknown screen %q", a.router.Current())
		}
		if quit {
			return nil
		}
	}
}

func (a *App) Close() {
	if a.api != nil {
		_ = a.api.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// navigate follows an explicit user action. The graph is fixed, so a
// failure here is a programming error worth logging, not a user message.
func (a *App) navigate(to navigation.Screen, params navigation.Params) {
	if err := a.router.Navigate(to, params); err != nil {
		a.log.Error(context.Background(), "navigation rejected", "to", string(to), "err", err)
	}
}

// errorMessage resolves a flow error to the inline text a screen renders:
// validation errors through the string table, transport failures to the
// generic network message, HTTP errors to the server-provided message when
// present and the screen's fallback otherwise.
func (a *App) errorMessage(err error, fallbackKey string) string {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return a.tr.T(verr.Key)
	}
	if errors.Is(err, client.ErrUnavailable) {
		return a.tr.T("networkError")
	}
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return a.tr.T(fallbackKey)
}

// plainErrorMessage is errorMessage without the server-message passthrough.
// The reset screens always show their own fixed text for HTTP failures.
func (a *App) plainErrorMessage(err error, fallbackKey string) string {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return a.tr.T(verr.Key)
	}
	if errors.Is(err, client.ErrUnavailable) {
		return a.tr.T("networkError")
	}
	return a.tr.T(fallbackKey)
}

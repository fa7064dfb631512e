// Package navigation models the fixed screen graph of the client. Screens
// transition only through explicit Navigate calls; the bootstrap gate seeds
// the initial screen once at startup.
package navigation

import (
	"context"
	"errors"
	"fmt"

	"soukclient/internal/logging"
)

type Screen string

const (
	ScreenLogin           Screen = "Login"
	ScreenSignup          Screen = "Signup"
	ScreenAdditionalInfo  Screen = "AdditionalInfo"
	ScreenReset           Screen = "Reset"
	ScreenResetOTPConfirm Screen = "ResetOTPConfirm"
	ScreenHome            Screen = "Home"
)

// Params are the values passed along an edge, e.g. the pending user id into
// AdditionalInfo.
type Params map[string]string

const (
	ParamUserID = "userId"
	ParamEmail  = "email"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrMissingParam      = errors.New("missing required parameter")
)

// edges is the complete transition graph. An edge absent from this map is
// invalid no matter what triggered it.
var edges = map[Screen][]Screen{
	ScreenLogin:           {ScreenSignup, ScreenReset, ScreenHome},
	ScreenSignup:          {ScreenLogin, ScreenAdditionalInfo},
	ScreenAdditionalInfo:  {ScreenHome},
	ScreenReset:           {ScreenLogin, ScreenResetOTPConfirm},
	ScreenResetOTPConfirm: {ScreenLogin},
	ScreenHome:            {ScreenLogin},
}

// requiredParams lists the params a screen cannot be entered without.
var requiredParams = map[Screen][]string{
	ScreenAdditionalInfo:  {ParamUserID},
	ScreenResetOTPConfirm: {ParamEmail},
}

// Router is the navigation capability handed to flow controllers, so tests
// can substitute a fake and observe transitions without a rendering layer.
type Router interface {
	Navigate(to Screen, params Params) error
	Current() Screen
	Param(key string) (string, bool)
}

// StackRouter is the in-process Router used by the terminal app. The UI is
// strictly sequential, so no locking is needed.
type StackRouter struct {
	current Screen
	params  Params
	log     logging.Logger
}

func NewStackRouter(initial Screen, log logging.Logger) *StackRouter {
	return &StackRouter{current: initial, params: Params{}, log: log}
}

func (r *StackRouter) Current() Screen {
	return r.current
}

// Param returns a parameter passed into the current screen.
func (r *StackRouter) Param(key string) (string, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Navigate moves to the target screen if the edge exists in the graph and
// all required params are present. On failure the current screen and its
// params are left untouched.
func (r *StackRouter) Navigate(to Screen, params Params) error {
	if !edgeAllowed(r.current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.current, to)
	}
	for _, key := range requiredParams[to] {
		if params[key] == "" {
			return fmt.Errorf("%w: %s needs %q", ErrMissingParam, to, key)
		}
	}

	r.log.Debug(context.Background(), "navigate", "from", string(r.current), "to", string(to))
	r.current = to
	if params == nil {
		params = Params{}
	}
	r.params = params
	return nil
}

func edgeAllowed(from, to Screen) bool {
	for _, s := range edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

package controllers

import (
	"context"
	"log/slog"
	"time"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/telemetry/attributes"
	"github.com/narender/product-console/common/telemetry/metric"
	commontrace "github.com/narender/product-console/common/telemetry/trace"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/services"
	"github.com/narender/product-console/console/src/validation"
)

const (
	LoginSuccessMessage  = "Login successful"
	LoginFailureFallback = "Login failed"
	DefaultRedirectDelay = 5000 * time.Millisecond
)

// LoginState is where the form is in its submit cycle.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	LoginSucceeded
)

func (s LoginState) String() string {
	switch s {
	case LoginSubmitting:
		return "submitting"
	case LoginSucceeded:
		return "succeeded"
	default:
		return "idle"
	}
}

type LoginOption func(*LoginForm)

// WithRedirectDelay sets how long the success message stays before redirect.
func WithRedirectDelay(d time.Duration) LoginOption {
	return func(f *LoginForm) {
		f.redirectDelay = d
	}
}

func WithScheduler(s Scheduler) LoginOption {
	return func(f *LoginForm) {
		f.schedule = s
	}
}

// WithOnRedirect sets the navigation callback run once after a successful login.
func WithOnRedirect(fn func()) LoginOption {
	return func(f *LoginForm) {
		f.onRedirect = fn
	}
}

// LoginForm is the login screen's state.
type LoginForm struct {
	auth   services.AuthService
	logger *slog.Logger

	redirectDelay time.Duration
	schedule      Scheduler
	onRedirect    func()

	username       string
	password       string
	errors         validation.LoginErrors
	successMessage string
	token          string
	state          LoginState
}

func NewLoginForm(auth services.AuthService, logger *slog.Logger, opts ...LoginOption) *LoginForm {
	f := &LoginForm{
		auth:          auth,
		logger:        logger,
		redirectDelay: DefaultRedirectDelay,
		schedule:      AfterFunc,
		onRedirect:    func() {},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetUsername stores the raw value and clears every displayed error.
func (f *LoginForm) SetUsername(v string) {
	f.username = v
	f.errors = validation.LoginErrors{}
}

// SetPassword stores the raw value and clears every displayed error.
func (f *LoginForm) SetPassword(v string) {
	f.password = v
	f.errors = validation.LoginErrors{}
}

func (f *LoginForm) Username() string { return f.username }
func (f *LoginForm) Password() string { return f.password }
func (f *LoginForm) Errors() validation.LoginErrors { return f.errors }
func (f *LoginForm) SuccessMessage() string { return f.successMessage }
func (f *LoginForm) Token() string { return f.token }
func (f *LoginForm) State() LoginState { return f.state }
func (f *LoginForm) Loading() bool { return f.state == LoginSubmitting }
func (f *LoginForm) SubmitDisabled() bool { return f.Loading() }

// BeginSubmit validates the fields. When they pass it enters Submitting and
// returns the trimmed credentials to send. It returns false while a submit
// is already in flight or when validation failed.
func (f *LoginForm) BeginSubmit() (models.Credentials, bool) {
	if f.state == LoginSubmitting {
		return models.Credentials{}, false
	}

	f.errors = validation.ValidateLoginForm(f.username, f.password)
	if !f.errors.Valid() {
		return models.Credentials{}, false
	}

	f.state = LoginSubmitting
	f.successMessage = ""
	return models.Credentials{Username: f.username, Password: f.password}.Trimmed(), true
}

// CompleteSubmit applies the auth call's outcome. Every failure kind lands
// in the password slot.
func (f *LoginForm) CompleteSubmit(ctx context.Context, resp *models.LoginResponse, err error) {
	if f.state != LoginSubmitting {
		return
	}
	metric.RecordLoginAttempt(ctx, err == nil)

	if err != nil {
		f.state = LoginIdle
		f.errors = validation.LoginErrors{Password: apierrors.UserMessage(err, LoginFailureFallback)}
		f.logger.WarnContext(ctx, "Login failed",
			slog.String(attributes.LogFieldUsername, f.username),
			slog.String(attributes.LogFieldError, err.Error()))
		return
	}

	f.state = LoginSucceeded
	f.successMessage = LoginSuccessMessage
	if resp != nil {
		f.token = resp.Token
	}
	f.logger.InfoContext(ctx, "Login succeeded, redirect scheduled",
		slog.String(attributes.LogFieldUsername, f.username),
		slog.Duration("delay", f.redirectDelay))
	f.schedule(f.redirectDelay, f.onRedirect)
}

// Submit validates and, when the fields pass, calls the auth service and
// applies the result. It returns ErrInvalidForm, ErrSubmitInProgress, the
// auth error, or nil on success.
func (f *LoginForm) Submit(ctx context.Context) (err error) {
	if f.state == LoginSubmitting {
		return ErrSubmitInProgress
	}
	creds, ok := f.BeginSubmit()
	if !ok {
		return ErrInvalidForm
	}

	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppUsernameKey.String(creds.Username))
	defer commontrace.EndSpan(span, &err, nil)
	mc := metric.StartMetricsTimer("controller")
	defer mc.End(ctx, &err)

	resp, err := f.auth.Login(ctx, creds)
	f.CompleteSubmit(ctx, resp, err)
	return err
}

package form

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"landing-leads/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	LabelIdle       = "Get a FREE Quote"
	LabelSubmitting = "Submitting..."

	SuccessTitle = "Thank You!"
	SuccessBody  = "We will contact you soon."

	// FallbackError is shown when a failed response carries no message.
	FallbackError = "Failed to submit form"
	// TransportError is shown when no response arrived at all.
	TransportError = "Failed to submit form. Please try again."

	DismissAfter = 5 * time.Second
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrSubmitting   = errors.New("submission already in progress")
)

// Submitter delivers the field mapping to the submission endpoint.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Submitter --filename=Submitter.go --output=./mocks --outpkg=mocks
type Submitter interface {
	Submit(ctx context.Context, fields map[string]string) error
}

// ResponseError is returned by a Submitter when the endpoint answered with
// a failure. Message is the endpoint's error text, possibly empty.
type ResponseError interface {
	error
	ResponseMessage() string
}

// SubmitError is what the visitor sees after a failed submit.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }

func (e *SubmitError) Unwrap() error { return e.Err }

type Notification struct {
	Title string
	Body  string
}

// Timer is the subset of *time.Timer the form needs.
type Timer interface {
	Stop() bool
}

type AfterFunc func(d time.Duration, f func()) Timer

type Option func(*Form)

// WithAfterFunc replaces the clock used for the notification auto-dismiss.
func WithAfterFunc(fn AfterFunc) Option {
	return func(f *Form) {
		f.afterFunc = fn
	}
}

// Form holds the state of one lead-capture form. It is safe for concurrent
// use; the dismiss timer fires on its own goroutine.
type Form struct {
	submitter Submitter
	validate  *validator.Validate
	afterFunc AfterFunc

	mu         sync.Mutex
	values     map[string]string
	submitting bool
	notice     *Notification
	timer      Timer
	// gen invalidates a pending dismiss once the notification was replaced.
	gen uint64
}

func New(s Submitter, opts ...Option) *Form {
	f := &Form{
		submitter: s,
		validate:  validator.New(),
		afterFunc: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
		values: emptyValues(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func emptyValues() map[string]string {
	v := make(map[string]string, len(models.Fields))
	for _, name := range models.Fields {
		v[name] = ""
	}
	return v
}

func (f *Form) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.values[name] = value
	return nil
}

func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return maps.Clone(f.values)
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

// Label is the current text of the submit control.
func (f *Form) Label() string {
	if f.Submitting() {
		return LabelSubmitting
	}
	return LabelIdle
}

func (f *Form) Notification() (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.notice == nil {
		return Notification{}, false
	}
	return *f.notice, true
}

func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dismissLocked()
}

func (f *Form) dismissLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.notice = nil
	f.gen++
}

var rules = map[string]string{
	models.FieldFullName:      "required",
	models.FieldEmail:         "required,email",
	models.FieldContactNumber: "required,numeric,len=10",
	models.FieldLocation:      "required",
	models.FieldTeamSize:      "omitempty,oneof=0-3 4-10 11-50 51-200 200+",
}

// Validate applies the same checks the page's input attributes enforce:
// required fields, email shape, a ten digit phone number and a known team
// size. It returns the names of the failing fields in form order.
func (f *Form) Validate() []string {
	values := f.Values()

	var invalid []string
	for _, name := range models.Fields {
		rule, ok := rules[name]
		if !ok {
			continue
		}
		if err := f.validate.Var(values[name], rule); err != nil {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

// Submit sends the current values once. On success the fields are cleared
// and the thank-you notification is shown until dismissed or DismissAfter
// elapses. A failure leaves the values in place.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	f.submitting = true
	values := maps.Clone(f.values)
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		return toSubmitError(err)
	}

	f.values = emptyValues()
	f.dismissLocked()
	f.notice = &Notification{Title: SuccessTitle, Body: SuccessBody}

	gen := f.gen
	f.timer = f.afterFunc(DismissAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.gen == gen {
			f.timer = nil
			f.dismissLocked()
		}
	})

	return nil
}

func toSubmitError(err error) *SubmitError {
	var respErr ResponseError
	if errors.As(err, &respErr) {
		msg := respErr.ResponseMessage()
		if msg == "" {
			msg = FallbackError
		}
		return &SubmitError{Message: "Error: " + msg, Err: err}
	}
	return &SubmitError{Message: TransportError, Err: err}
}

package submission

import (
	"context"
	"time"

	"landing-leads/internal/models"
	"landing-leads/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RowAppender
type RowAppender interface {
	AppendRow(ctx context.Context, row models.Row) error
}

type SubmissionService struct {
	appender RowAppender
	loc      *time.Location
	now      func() time.Time
}

type Option func(*SubmissionService)

// WithClock overrides the time source used to stamp rows.
func WithClock(now func() time.Time) Option {
	return func(s *SubmissionService) {
		s.now = now
	}
}

func NewSubmissionService(appender RowAppender, loc *time.Location, opts ...Option) *SubmissionService {
	if loc == nil {
		loc = time.UTC
	}

	s := &SubmissionService{
		appender: appender,
		loc:      loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit appends one row for rec. Nothing is appended when a required field is empty.
func (s *SubmissionService) Submit(ctx context.Context, rec models.Submission) error {
	const op = "service.submission.Submit"

	if missing := rec.MissingFields(); len(missing) > 0 {
		return &service.ValidationError{Fields: missing}
	}

	row := rec.Row(s.now().In(s.loc))

	if err := s.appender.AppendRow(ctx, row); err != nil {
		return &service.UpstreamError{Op: op, Err: err}
	}

	return nil
}

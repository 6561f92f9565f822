package submission

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"landing-leads/internal/http/api"
	"landing-leads/internal/lib/sl"
	"landing-leads/internal/models"
	"landing-leads/internal/service"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=submissionService --structname=MockSubmissionService --filename=MockSubmissionService.go --output=../mocks --outpkg=mocks
type submissionService interface {
	Submit(ctx context.Context, rec models.Submission) error
}

type SubmissionHandler struct {
	log      *slog.Logger
	service  submissionService
	validate *validator.Validate
}

func NewSubmissionHandler(log *slog.Logger, s submissionService) *SubmissionHandler {
	return &SubmissionHandler{
		log:      log,
		service:  s,
		validate: newValidator(),
	}
}

// SubmitFormRequest is the body posted by the landing page form.
// Only presence is checked; email and phone formats are left to the client.
type SubmitFormRequest struct {
	FullName      string `json:"fullName"      validate:"required"`
	Email         string `json:"email"         validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Location      string `json:"location"      validate:"required"`
	BusinessName  string `json:"businessName"`
	TeamSize      string `json:"teamSize"`
}

func (r SubmitFormRequest) toModel() models.Submission {
	return models.Submission{
		FullName:      r.FullName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		Location:      r.Location,
		BusinessName:  r.BusinessName,
		TeamSize:      r.TeamSize,
	}
}

func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.submission.Submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input SubmitFormRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.MsgBadRequest))
		return
	}

	if err := h.validate.Struct(input); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("failed to validate request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.MsgBadRequest))
			return
		}

		log.Info("missing required fields", slog.Any("fields", api.FieldNames(validateErr)))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateErr))
		return
	}

	err := h.service.Submit(ctx, input.toModel())
	if err != nil {
		var (
			vErr *service.ValidationError
			uErr *service.UpstreamError
		)
		switch {
		case errors.As(err, &vErr):
			log.Info("missing required fields", slog.Any("fields", vErr.Fields))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.MissingFields(vErr.Fields))
		case errors.As(err, &uErr):
			log.Error("failed to append submission", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.UpstreamError(uErr.Err.Error()))
		default:
			log.Error("error while submitting form", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.UpstreamError(err.Error()))
		}
		return
	}

	log.Info("submission appended")
	render.JSON(w, r, api.Submitted())
}

// newValidator reports fields by their JSON key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

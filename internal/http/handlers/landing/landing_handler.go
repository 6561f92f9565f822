package landing

import (
	"bytes"
	"log/slog"
	"net/http"

	"landing-leads/internal/lib/sl"
	"landing-leads/internal/templates"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
)

type LandingHandler struct {
	log  *slog.Logger
	page templates.LandingPage
}

func NewLandingHandler(log *slog.Logger, phone string) *LandingHandler {
	return &LandingHandler{
		log:  log,
		page: templates.NewLandingPage(phone),
	}
}

func (h *LandingHandler) Index(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.landing.Index"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := renderHTML(w, r, templates.Landing(h.page)); err != nil {
		log.Error("failed to render landing page", sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderHTML buffers the component so a failed render can still answer 500.
func renderHTML(w http.ResponseWriter, r *http.Request, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}

package handlers

import (
	"net/http"

	"landing-leads/internal/http/api"

	"github.com/go-chi/render"
)

func Healthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, api.HealthResponse{Status: "ok"})
	}
}

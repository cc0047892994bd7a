package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type startupTimeFn func() time.Time

type healthHandler struct {
	responder   Responder
	startupTime startupTimeFn
}

func newHealthHandler(startupTime startupTimeFn) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		startupTime: startupTime,
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(h.startupTime()).Round(time.Second).String(),
		})
	}
}

package handler

import "net/http"

// IndexHandler serves the service info payload at the root path.
type IndexHandler struct {
	serviceName string
	botActive   bool
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(serviceName string, botActive bool) *IndexHandler {
	return &IndexHandler{
		serviceName: serviceName,
		botActive:   botActive,
	}
}

// IndexResponse names the service and lists its routes.
type IndexResponse struct {
	Service   string   `json:"service"`
	Routes    []string `json:"routes"`
	BotActive bool     `json:"bot_active"`
}

// Info handles GET /
func (h *IndexHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{
		Service: h.serviceName,
		Routes: []string{
			"GET /api/info?url=",
			"GET /api/search?q=&limit=",
			"GET /api/get?key=&url=",
			"GET /api/stream?key=&url=",
		},
		BotActive: h.botActive,
	})
}

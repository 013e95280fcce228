package http

import (
	"net/http"

	"waylog/internal/logger"
	"waylog/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		Version: h.services.AppInfo.GetAppVersion(r.Context()),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing health response")
	}
}

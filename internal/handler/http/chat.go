package http

import (
	"encoding/json"
	"net/http"

	"waylog/internal/app"
	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

func (h *Handler) chatMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.chatMessage").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.chatMessage").Msg("chat message failed validation")
		http.Error(w, app.MsgMessageTextRequired, statusFromError(err))
		return
	}

	reply := h.services.ChatStub.Reply(r.Context(), req)

	if _, err := utils.WriteJSON(w, reply, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.chatMessage").Msg("error writing chat reply")
	}
}

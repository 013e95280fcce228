package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"waylog/internal/app"
	"waylog/internal/logger"
	"waylog/internal/utils"
	"waylog/models"
)

const (
	// maxUploadBytes caps the whole multipart body, metadata and blobs included.
	maxUploadBytes = 20 << 20
	// maxMultipartMemory is how much of a parsed form is kept in memory
	// before spilling to disk.
	maxMultipartMemory = 4 << 20
)

func (h *Handler) uploadEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Str("func", "*Handler.uploadEntry").Msg("upload body over the size limit")
			http.Error(w, app.MsgUploadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.uploadEntry").Msg("malformed multipart body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var entry models.UploadEntry
	if err := json.Unmarshal([]byte(r.FormValue("metadata")), &entry); err != nil {
		log.Err(err).Str("func", "*Handler.uploadEntry").Msg("unparsable metadata field")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	image, err := readFilePart(r, "image")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadEntry").Msg("error reading image part")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	voice, err := readFilePart(r, "voice")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadEntry").Msg("error reading voice part")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	draft := models.UploadDraft{Note: entry.Note, Image: image, Voice: voice}
	if err = h.validator.Validate(r.Context(), draft); err != nil {
		log.Err(err).Str("func", "*Handler.uploadEntry").Msg("upload entry failed validation")
		http.Error(w, app.MsgUploadContentRequired, statusFromError(err))
		return
	}

	receipt := h.services.UploadStub.Accept(r.Context(), entry, int64(len(image)), int64(len(voice)))

	if _, err = utils.WriteJSON(w, receipt, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.uploadEntry").Msg("error writing upload receipt")
	}
}

// readFilePart reads the named multipart file in full. A missing part is not
// an error: uploads may carry a note only, an image only, or any mix.
func readFilePart(r *http.Request, name string) ([]byte, error) {
	file, _, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s part: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	return io.ReadAll(file)
}

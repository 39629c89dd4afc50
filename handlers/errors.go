package handlers

import (
	"errors"
	"log"
	"net/http"

	"dining-server/model"
)

// writeError logs the error and maps its kind to an HTTP status.
func writeError(w http.ResponseWriter, message string, err error) {
	log.Println(message+": ", err)

	switch {
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, message, http.StatusNotFound)
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrInvalidInput):
		http.Error(w, message, http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

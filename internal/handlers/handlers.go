package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// sendErrorOrLog replies with status and {"error": err}.
func sendErrorOrLog(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	payload, mErr := json.Marshal(wrapError(err))
	if mErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("unable to marshal error", slog.Any("error", mErr))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, wErr := w.Write(payload); wErr != nil {
		logger.Error(
			"unable to send error",
			slog.Any("sent error", err),
			slog.Any("error", wErr),
		)
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func Status(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

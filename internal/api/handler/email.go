package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/notifying"
)

// SendRestockEmail responde 200 tanto no envio SMTP quanto na gravação em outbox; o campo status diferencia
func SendRestockEmail(notifier notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var email domain.RestockEmail
		if !decodeBody(w, r, &email) {
			return
		}

		delivery, err := notifier.SendRestockEmail(r.Context(), email)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, delivery)
	}
}

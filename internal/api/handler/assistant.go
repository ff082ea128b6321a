package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/assisting"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// decodeQuery lê e valida o corpo {"query": "..."}
func decodeQuery(w http.ResponseWriter, r *http.Request) (domain.AssistantQuery, bool) {
	var payload domain.AssistantQuery
	if !decodeBody(w, r, &payload) {
		return payload, false
	}

	if err := utils.Validate.Struct(payload); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No query provided", utils.ProcessValidationErrors(err))
		return payload, false
	}

	return payload, true
}

func AssistantQuery(assistant assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodeQuery(w, r)
		if !ok {
			return
		}

		answer, err := assistant.Query(r.Context(), payload.Query)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("intent", answer.Intent).Debug("assistant: query answered")
		writeJSON(w, r, http.StatusOK, answer)
	}
}

func AssistantChat(assistant assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodeQuery(w, r)
		if !ok {
			return
		}

		reply, err := assistant.Chat(r.Context(), payload.Query)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, domain.ChatReply{Response: reply})
	}
}

package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/agency-dashboard/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

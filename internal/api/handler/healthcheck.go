package handler

import (
	"net/http"
	"time"
)

type HealthcheckResponse struct {
	Status  string         `json:"status"`
	Time    time.Time      `json:"time"`
	Records map[string]int `json:"records,omitempty"`
}

// HealthcheckHandler responde com o total de registros carregados por nível
func HealthcheckHandler(records map[string]int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, HealthcheckResponse{
			Status:  "ok",
			Time:    time.Now().UTC(),
			Records: records,
		})
	})
}

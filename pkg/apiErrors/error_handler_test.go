package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status int
	}{
		{name: "Código de acesso inválido", code: ErrInvalidAccessCode, status: http.StatusUnauthorized},
		{name: "Caminho não encontrado", code: ErrPathNotFound, status: http.StatusNotFound},
		{name: "Requisição inválida", code: ErrInvalidRequest, status: http.StatusBadRequest},
		{name: "Código desconhecido vira 500", code: "XYZ_999", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]int{"invalid_at": 2})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.NotNil(t, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrPathNotFound).Code)

	apiErr := FromError(errors.New("boom"), ErrDatasetLoad)
	assert.Equal(t, ErrDatasetLoad, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}

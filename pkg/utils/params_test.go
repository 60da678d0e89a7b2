package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/charity/internal/domain"
)

func TestIDParam(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int
		wantErr bool
	}{
		{name: "Numeric", path: "/items/42", want: 42},
		{name: "Zero", path: "/items/0", wantErr: true},
		{name: "Negative", path: "/items/-3", wantErr: true},
		{name: "Text", path: "/items/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got int
				err error
			)
			r := chi.NewRouter()
			r.Get("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
				got, err = IDParam(req, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.EqualError(t, err, "Invalid id")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?campaign_id=7&bad=x", nil)

	v, err := QueryInt(req, "campaign_id")
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = QueryInt(req, "missing")
	assert.NoError(t, err)
	assert.Zero(t, v)

	_, err = QueryInt(req, "bad")
	assert.EqualError(t, err, "Invalid bad")
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-expense-tracker/models"
)

func TestVersion(t *testing.T) {
	h, m := newTestHandlerWithMocks(t)

	want := models.VersionInfo{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}
	m.appInfo.EXPECT().GetVersionInfo(gomock.Any()).Return(want)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestStatic(t *testing.T) {
	h, _ := newTestHandlerWithMocks(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}

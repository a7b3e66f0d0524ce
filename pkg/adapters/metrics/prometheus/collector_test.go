package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncRequests(t *testing.T) {
	c := NewCollector()

	assert.Equal(t, 0.0, c.Requests())

	for i := 0; i < 5; i++ {
		c.IncRequests()
	}
	assert.Equal(t, 5.0, c.Requests())
}

func TestHandlerExposition(t *testing.T) {
	c := NewCollector()
	c.IncRequests()
	c.IncRequests()
	c.IncRequests()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total 3")
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()

	a.IncRequests()

	assert.Equal(t, 1.0, a.Requests())
	assert.Equal(t, 0.0, b.Requests())
}

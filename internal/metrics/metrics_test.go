package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Middleware(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	e := httpexpect.Default(t, server.URL)

	e.GET("/items/1").Expect().Status(http.StatusNoContent)
	e.GET("/items/2").Expect().Status(http.StatusNoContent)
	e.GET("/ok").Expect().Status(http.StatusOK)
	e.GET("/missing").Expect().Status(http.StatusNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/items/{id}", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", unmatchedRoute, "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inflightRequests))

	body := e.GET("/metrics").Expect().Status(http.StatusOK).Body()
	body.Contains(`http_requests_total{method="GET",route="/items/{id}",status="204"} 2`)
	body.Contains("http_request_duration_seconds_bucket")
}

func TestMetrics_ObserveRedirect(t *testing.T) {
	m := New()

	m.ObserveRedirect(true)
	m.ObserveRedirect(true)
	m.ObserveRedirect(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.redirectsTotal.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redirectsTotal.WithLabelValues("not_found")))
}

func TestNew_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

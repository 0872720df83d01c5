package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCounters(t *testing.T) {
	m := New()

	m.LoanCreated(500)
	m.LoanCreated(250)
	m.RepaymentRecorded(200, false)
	m.RepaymentRecorded(300, true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loansCreated))
	assert.Equal(t, 750.0, testutil.ToFloat64(m.lentAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.repayments.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.repayments.WithLabelValues("paid")))
	assert.Equal(t, 500.0, testutil.ToFloat64(m.repaidAmount))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.LoanCreated(1)
		m.RepaymentRecorded(1, true)
	})
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()

	router := chi.NewRouter()
	router.Use(m.Middleware())
	router.Get("/api/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	})
	router.Handle("/metrics", m.Handler())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/games/3", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/games/4", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/games/{id}", "200")))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tracker_http_requests_total"))
}

package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes groups handlers.
type Routes struct {
	Login     http.HandlerFunc
	Evaluate  http.HandlerFunc
	Forecast  http.HandlerFunc
	Audit     http.HandlerFunc
	Audits    http.HandlerFunc
	History   http.HandlerFunc
	CreateRpt http.HandlerFunc
	ReportPDF http.HandlerFunc
	Feed      http.HandlerFunc
	Health    http.HandlerFunc
}

// NewRouter registers endpoints. authMW wraps the evaluator and report
// endpoints; history, health and metrics stay open.
func NewRouter(routes Routes, authMW func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	protect := func(h http.HandlerFunc) http.Handler {
		if authMW == nil {
			return h
		}
		return authMW(h)
	}

	if routes.Login != nil {
		mux.Handle("/auth/login", method(http.MethodPost, routes.Login))
	}
	if routes.Evaluate != nil {
		mux.Handle("/api/evaluate", methodH(http.MethodPost, protect(routes.Evaluate)))
	}
	if routes.Forecast != nil {
		mux.Handle("/api/forecast", methodH(http.MethodPost, protect(routes.Forecast)))
	}
	if routes.Audit != nil {
		mux.Handle("/api/audit", methodH(http.MethodPost, protect(routes.Audit)))
	}
	if routes.Audits != nil {
		mux.Handle("/api/audits", methodH(http.MethodGet, protect(routes.Audits)))
	}
	if routes.History != nil {
		mux.Handle("/api/history", method(http.MethodGet, routes.History))
	}
	if routes.CreateRpt != nil {
		mux.Handle("/api/reports", methodH(http.MethodPost, protect(routes.CreateRpt)))
	}
	if routes.ReportPDF != nil {
		mux.Handle("/api/reports/", methodH(http.MethodGet, protect(routes.ReportPDF)))
	}
	if routes.Feed != nil {
		mux.Handle("/feed/ws", method(http.MethodGet, routes.Feed))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

func methodH(expected string, handler http.Handler) http.HandlerFunc {
	return method(expected, handler.ServeHTTP)
}

package http

import (
	"net/http"

	"github.com/aegislegal/demogate/internal/gate/demo"
	"github.com/aegislegal/demogate/pkg/httpx"
)

// Demo content handlers serve the static case findings behind the guard.
// The payloads are fixtures; the value being protected is access, not data.

// ContradictionsHandler godoc
//
//	@Summary	Contradiction Findings Endpoint
//	@Tags		Demo
//	@Produce	json
//	@Success	200	{array}		gatesdk.Contradiction
//	@Failure	401	{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Security	BearerAuth
//	@Router		/api/demo/contradictions [get].
func ContradictionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, demo.Contradictions)
	}
}

// MisconductHandler godoc
//
//	@Summary	Reciprocal Misconduct Findings Endpoint
//	@Tags		Demo
//	@Produce	json
//	@Success	200	{array}		gatesdk.Misconduct
//	@Failure	401	{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Security	BearerAuth
//	@Router		/api/demo/misconduct [get].
func MisconductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, demo.Misconducts)
	}
}

// AlienationHandler godoc
//
//	@Summary	Behavioral Pattern Findings Endpoint
//	@Tags		Demo
//	@Produce	json
//	@Success	200	{array}		gatesdk.AlienationPattern
//	@Failure	401	{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Security	BearerAuth
//	@Router		/api/demo/alienation [get].
func AlienationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, demo.AlienationPatterns)
	}
}

// TimelineHandler godoc
//
//	@Summary	Case Timeline Endpoint
//	@Tags		Demo
//	@Produce	json
//	@Success	200	{array}		gatesdk.TimelineEvent
//	@Failure	401	{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Security	BearerAuth
//	@Router		/api/demo/timeline [get].
func TimelineHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, demo.Timeline)
	}
}

// ReportHandler godoc
//
//	@Summary	Case Report Endpoint
//	@Tags		Demo
//	@Produce	json
//	@Success	200	{object}	gatesdk.Report
//	@Failure	401	{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Security	BearerAuth
//	@Router		/api/demo/report [get].
func ReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, demo.CaseReport)
	}
}

package http

import (
	"net/http"

	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/trackersdk"
)

type ProductionHandler struct {
	Production *service.ProductionService
}

// HandleCreate logs a production run for the session user.
//
//	@Summary		Record production
//	@Tags			Production
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.CreateRecordRequest	true	"Production run"
//	@Success		201		{object}	trackersdk.RecordResponse		"Created"
//	@Failure		400		{object}	trackersdk.ErrorResponse		"Invalid input, unknown product type or color"
//	@Failure		401		{object}	trackersdk.ErrorResponse		"Missing or invalid session"
//	@Failure		503		{object}	trackersdk.ErrorResponse		"Database unavailable"
//	@Router			/v1/production [post].
func (h *ProductionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req trackersdk.CreateRecordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	rec, err := h.Production.Create(ctx, service.RecordInput{
		ProductTypeID: req.ProductTypeID,
		ColorID:       req.ColorID,
		Quantity:      req.Quantity,
		Date:          req.Date,
		Shift:         req.Shift,
		Operator:      req.Operator,
		Notes:         req.Notes,
		Quality:       req.Quality,
	}, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trackersdk.RecordResponse{
		Message: "production record created",
		Record:  toRecord(rec),
	})
}

// HandleList pages through production records, newest first.
//
//	@Summary		List production records
//	@Tags			Production
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int							false	"Page, from 1"			default(1)
//	@Param			limit	query		int							false	"Records per page"	default(10)	maximum(100)
//	@Success		200		{object}	trackersdk.RecordsResponse	"One page of records"
//	@Failure		401		{object}	trackersdk.ErrorResponse	"Missing or invalid session"
//	@Failure		503		{object}	trackersdk.ErrorResponse	"Database unavailable"
//	@Router			/v1/production [get].
func (h *ProductionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.Production.List(r.Context(),
		httpx.QueryInt(r, "page", 1),
		httpx.QueryInt(r, "limit", service.DefaultPageLimit),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := trackersdk.RecordsResponse{
		Records: make([]trackersdk.ProductionRecord, 0, len(page.Records)),
		Total:   page.Total,
		Page:    page.Page,
		Pages:   page.Pages,
	}
	for _, rec := range page.Records {
		out.Records = append(out.Records, toRecord(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSummary returns the dashboard aggregates.
//
//	@Summary		Production summary
//	@Description	Totals for today and the last seven days (UTC calendar days) plus breakdowns by product type, shift and quality grade.
//	@Tags			Production
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.SummaryResponse	"Aggregates"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"Missing or invalid session"
//	@Failure		503	{object}	trackersdk.ErrorResponse	"Database unavailable"
//	@Router			/v1/production/summary [get].
func (h *ProductionHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Production.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSummary(sum))
}

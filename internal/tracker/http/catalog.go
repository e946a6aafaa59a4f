package http

import (
	"net/http"

	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/trackersdk"
)

type CatalogHandler struct {
	Catalog *service.CatalogService
}

// HandleListProductTypes lists product types.
//
//	@Summary		List product types
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.ProductTypesResponse	"Product types sorted by name"
//	@Failure		401	{object}	trackersdk.ErrorResponse		"Missing or invalid session"
//	@Failure		503	{object}	trackersdk.ErrorResponse		"Database unavailable"
//	@Router			/v1/product-types [get].
func (h *CatalogHandler) HandleListProductTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Catalog.ListProductTypes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := trackersdk.ProductTypesResponse{ProductTypes: make([]trackersdk.ProductType, 0, len(list))}
	for _, pt := range list {
		out.ProductTypes = append(out.ProductTypes, toProductType(pt))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateProductType creates a product type.
//
//	@Summary		Create a product type
//	@Description	Requires the admin role. Names are unique.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.CreateProductTypeRequest	true	"Product type"
//	@Success		201		{object}	trackersdk.ProductTypeResponse		"Created"
//	@Failure		400		{object}	trackersdk.ErrorResponse			"Invalid input or duplicate name"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"Missing or invalid session"
//	@Failure		403		{object}	trackersdk.ErrorResponse			"Admin role required"
//	@Failure		503		{object}	trackersdk.ErrorResponse			"Database unavailable"
//	@Router			/v1/product-types [post].
func (h *CatalogHandler) HandleCreateProductType(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.CreateProductTypeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	pt, err := h.Catalog.CreateProductType(r.Context(), service.ProductTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trackersdk.ProductTypeResponse{
		Message:     "product type created",
		ProductType: toProductType(pt),
	})
}

// HandleListColors lists colors.
//
//	@Summary		List colors
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.ColorsResponse	"Colors sorted by name"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"Missing or invalid session"
//	@Failure		503	{object}	trackersdk.ErrorResponse	"Database unavailable"
//	@Router			/v1/colors [get].
func (h *CatalogHandler) HandleListColors(w http.ResponseWriter, r *http.Request) {
	list, err := h.Catalog.ListColors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := trackersdk.ColorsResponse{Colors: make([]trackersdk.Color, 0, len(list))}
	for _, c := range list {
		out.Colors = append(out.Colors, toColor(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateColor creates a color.
//
//	@Summary		Create a color
//	@Description	Requires the admin role. Names are unique, hex codes are "#RRGGBB".
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.CreateColorRequest	true	"Color"
//	@Success		201		{object}	trackersdk.ColorResponse		"Created"
//	@Failure		400		{object}	trackersdk.ErrorResponse		"Invalid input or duplicate name"
//	@Failure		401		{object}	trackersdk.ErrorResponse		"Missing or invalid session"
//	@Failure		403		{object}	trackersdk.ErrorResponse		"Admin role required"
//	@Failure		503		{object}	trackersdk.ErrorResponse		"Database unavailable"
//	@Router			/v1/colors [post].
func (h *CatalogHandler) HandleCreateColor(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.CreateColorRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	c, err := h.Catalog.CreateColor(r.Context(), service.ColorInput{
		Name:    req.Name,
		HexCode: req.HexCode,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trackersdk.ColorResponse{
		Message: "color created",
		Color:   toColor(c),
	})
}

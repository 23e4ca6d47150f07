package http

import (
	"encoding/json"
	"net/http"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
)

type ProductsHandler struct {
	ProductService *service.ProductService
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int64  `json:"quantity"`
}

func (req productRequest) input() service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Quantity:    req.Quantity,
	}
}

// HandleList godoc
//
//	@Summary	List products
//	@Tags		Products
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	domain.Product	"All products, newest first"
//	@Router		/v1/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

// HandleGet godoc
//
//	@Summary	Get one product
//	@Tags		Products
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	domain.Product
//	@Failure	404	{object}	httpx.ErrorBody	"Unknown product"
//	@Router		/v1/products/{id} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleCreate godoc
//
//	@Summary	Create a product
//	@Tags		Products
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		productRequest	true	"Product payload"
//	@Success	201		{object}	domain.Product
//	@Failure	400		{object}	httpx.ErrorBody	"Invalid payload"
//	@Router		/v1/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrSessionInvalid)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	p, err := h.ProductService.Create(r.Context(), principal.AccountID, req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// HandleUpdate godoc
//
//	@Summary	Update a product
//	@Tags		Products
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Product id"
//	@Param		request	body		productRequest	true	"Product payload"
//	@Success	200		{object}	domain.Product
//	@Failure	404		{object}	httpx.ErrorBody	"Unknown product"
//	@Router		/v1/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	p, err := h.ProductService.Update(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleDelete godoc
//
//	@Summary	Delete a product
//	@Tags		Products
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Product id"
//	@Success	204	"Product deleted"
//	@Failure	404	{object}	httpx.ErrorBody	"Unknown product"
//	@Router		/v1/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProductService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minikart/commerce-api/internal/core/domain"
	"github.com/minikart/commerce-api/internal/core/ports"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create adds a product to the catalog. The route is guarded: the acting
// identity comes from the verified session token, and the path id must name
// the same user, closing the spoof-by-path-parameter gap.
//
// @Summary      Create a product (admin only)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Acting user id (must match session)"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      202   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /product/create/{id} [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	if pathID := c.Param("id"); pathID != actor {
		return c.JSON(http.StatusForbidden, errorResponse{Error: "path id does not match session identity"})
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.CreateProduct(c.Request().Context(), actor, ports.ProductInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "admin role required"})
		case errors.Is(err, domain.ErrInvalidProduct):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusAccepted, product)
}

// GetAll returns every product in the catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /product/all-product [get]
func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, products)
}

// Update replaces the full product document. A missing product is 404 in
// every branch.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /product/update-product/{id} [post]
func (h *ProductHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), id, ports.ProductInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidProduct):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, product)
}

// Delete removes a product by id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/delete-product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.service.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

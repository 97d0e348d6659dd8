package product

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "storefront/internal/errors"
	"storefront/internal/httpjson"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		c.logger.Error("listing products failed", zap.Error(err))
		httpjson.WriteError(w, err, c.logger)
		return
	}

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toDTO(p))
	}
	httpjson.Write(w, http.StatusOK, out, c.logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpjson.WriteError(w, err, c.logger)
		return
	}

	p, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, toDTO(*p), c.logger)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err, c.logger)
		return
	}

	p, err := c.service.Create(r.Context(), req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.logger.Info("product created", zap.Int64("productId", p.ID))
	httpjson.Write(w, http.StatusCreated, toDTO(*p), c.logger)
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpjson.WriteError(w, err, c.logger)
		return
	}

	var req ProductRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err, c.logger)
		return
	}

	p, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.logger.Info("product updated", zap.Int64("productId", p.ID))
	httpjson.Write(w, http.StatusOK, toDTO(*p), c.logger)
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpjson.WriteError(w, err, c.logger)
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.writeError(w, err)
		return
	}

	c.logger.Info("product deleted", zap.Int64("productId", id))
	httpjson.Write(w, http.StatusOK, map[string]bool{"ok": true}, c.logger)
}

// writeError hides repository wording for missing rows behind the generic
// "Not found" body.
func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		httpjson.WriteMessage(w, http.StatusNotFound, "Not found", c.logger)
		return
	}
	httpjson.WriteError(w, err, c.logger)
}

func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}

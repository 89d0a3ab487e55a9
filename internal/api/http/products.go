package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// ProductRequest is the request payload for product create and update.
type ProductRequest struct {
	*entity.ProductInsert
}

func (p *ProductRequest) Bind(r *http.Request) error {
	if p.ProductInsert == nil {
		return errors.New("missing required product fields")
	}
	return nil
}

// StockAdjustRequest moves a product's stock by a signed delta.
type StockAdjustRequest struct {
	Delta int    `json:"delta"`
	Note  string `json:"note"`
}

func (p *StockAdjustRequest) Bind(r *http.Request) error {
	if p.Delta == 0 {
		return errors.New("delta must be non-zero")
	}
	return nil
}

// BulkPatchRequest applies one patch to many products.
type BulkPatchRequest struct {
	Ids   []int                `json:"ids"`
	Patch *entity.ProductPatch `json:"patch"`
}

func (p *BulkPatchRequest) Bind(r *http.Request) error {
	if len(p.Ids) == 0 {
		return errors.New("ids must not be empty")
	}
	if p.Patch == nil || p.Patch.IsZero() {
		return errors.New("patch must set at least one field")
	}
	return nil
}

// BulkDeleteRequest removes many products at once.
type BulkDeleteRequest struct {
	Ids []int `json:"ids"`
}

func (p *BulkDeleteRequest) Bind(r *http.Request) error {
	if len(p.Ids) == 0 {
		return errors.New("ids must not be empty")
	}
	return nil
}

// CountResponse reports how many rows an operation touched.
type CountResponse struct {
	Count int `json:"count"`
}

func pathId(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func (s *Server) saveProduct(w http.ResponseWriter, r *http.Request) {
	data := &ProductRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	p, err := s.manager.SaveProduct(r.Context(), 0, data.ProductInsert)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	data := &ProductRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	p, err := s.manager.SaveProduct(r.Context(), id, data.ProductInsert)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.JSON(w, r, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := s.manager.DeleteProduct(r.Context(), id); err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.NoContent(w, r)
}

func (s *Server) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	data := &StockAdjustRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	p, err := s.manager.AdjustStock(r.Context(), id, data.Delta, data.Note)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.JSON(w, r, p)
}

func (s *Server) bulkUpdateProducts(w http.ResponseWriter, r *http.Request) {
	data := &BulkPatchRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	n, err := s.manager.BulkUpdateProducts(r.Context(), data.Ids, data.Patch)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.JSON(w, r, CountResponse{Count: n})
}

func (s *Server) bulkDeleteProducts(w http.ResponseWriter, r *http.Request) {
	data := &BulkDeleteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	n, err := s.manager.BulkDeleteProducts(r.Context(), data.Ids)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.JSON(w, r, CountResponse{Count: n})
}

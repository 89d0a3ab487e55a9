package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// SaleRequest is the request payload for recording a sale.
type SaleRequest struct {
	*entity.SaleInsert
}

func (p *SaleRequest) Bind(r *http.Request) error {
	if p.SaleInsert == nil {
		return errors.New("missing required sale fields")
	}
	return nil
}

// StockEntryRequest is the request payload for a manual stock movement.
type StockEntryRequest struct {
	*entity.StockHistoryInsert
}

func (p *StockEntryRequest) Bind(r *http.Request) error {
	if p.StockHistoryInsert == nil {
		return errors.New("missing required stock entry fields")
	}
	return nil
}

func (s *Server) recordSale(w http.ResponseWriter, r *http.Request) {
	data := &SaleRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	sale, err := s.manager.RecordSale(r.Context(), data.SaleInsert)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, sale)
}

func (s *Server) cancelSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	sale, err := s.manager.CancelSale(r.Context(), id)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.JSON(w, r, sale)
}

func (s *Server) addStockEntry(w http.ResponseWriter, r *http.Request) {
	data := &StockEntryRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	e, err := s.manager.AddStockEntry(r.Context(), data.StockHistoryInsert)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, e)
}

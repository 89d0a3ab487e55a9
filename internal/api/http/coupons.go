package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// CouponRequest is the request payload for creating or replacing a coupon.
type CouponRequest struct {
	*entity.CouponInsert
}

func (p *CouponRequest) Bind(r *http.Request) error {
	if p.CouponInsert == nil {
		return errors.New("missing required coupon fields")
	}
	return nil
}

// CategoryRequest adds a product category.
type CategoryRequest struct {
	Name string `json:"name"`
}

func (p *CategoryRequest) Bind(r *http.Request) error {
	if p.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

func (s *Server) saveCoupon(w http.ResponseWriter, r *http.Request) {
	data := &CouponRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	c, err := s.manager.SaveCoupon(r.Context(), data.CouponInsert)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, c)
}

func (s *Server) deleteCoupon(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := s.manager.DeleteCoupon(r.Context(), code); err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.NoContent(w, r)
}

func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	data := &CategoryRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := s.manager.AddCategory(r.Context(), data.Name); err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, data)
}

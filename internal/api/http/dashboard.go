package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

func periodToken(r *http.Request) entity.PeriodToken {
	return entity.PeriodToken(r.URL.Query().Get("period"))
}

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	ov, err := s.dashboard.Overview(r.Context(), periodToken(r), force)
	if err != nil {
		render.Render(w, r, errRenderer(err))
		return
	}
	render.JSON(w, r, ov)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.Stats(r.Context(), periodToken(r)))
}

func (s *Server) salesSeries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.SalesSeries(r.Context(), periodToken(r)))
}

func (s *Server) orderOutcome(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.OrderOutcome(r.Context(), periodToken(r)))
}

func (s *Server) bestSellers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	render.JSON(w, r, s.dashboard.BestSellers(r.Context(), periodToken(r), limit))
}

func (s *Server) topProducts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.TopProducts(r.Context(), periodToken(r)))
}

func (s *Server) recentSales(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.RecentSales(r.Context()))
}

func (s *Server) stockAlerts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.StockAlerts(r.Context()))
}

func (s *Server) categoryAnalysis(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.CategoryAnalysis(r.Context(), periodToken(r)))
}

func (s *Server) financialReport(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.FinancialReport(r.Context(), periodToken(r)))
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.dashboard.Categories(r.Context()))
}

// ResizeSignal reports a viewport size change.
type ResizeSignal struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (p *ResizeSignal) Bind(r *http.Request) error { return nil }

// TouchSignal marks the start or end of a touch interaction.
type TouchSignal struct {
	Active bool `json:"active"`
}

func (p *TouchSignal) Bind(r *http.Request) error { return nil }

func (s *Server) signalResize(w http.ResponseWriter, r *http.Request) {
	data := &ResizeSignal{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	s.sched.OnResize(r.Context(), data.Width, data.Height)
	render.NoContent(w, r)
}

func (s *Server) signalScroll(w http.ResponseWriter, r *http.Request) {
	s.sched.OnScroll()
	render.NoContent(w, r)
}

func (s *Server) signalTouch(w http.ResponseWriter, r *http.Request) {
	data := &TouchSignal{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if data.Active {
		s.sched.TouchStart()
	} else {
		s.sched.TouchEnd()
	}
	render.NoContent(w, r)
}

func (s *Server) signalPeriodChange(w http.ResponseWriter, r *http.Request) {
	s.dashboard.ChangePeriod(r.Context())
	render.NoContent(w, r)
}

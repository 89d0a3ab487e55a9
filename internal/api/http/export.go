package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/render"
)

func (s *Server) exportFinancialReport(w http.ResponseWriter, r *http.Request) {
	f, err := s.exporter.FinancialReportWorkbook(r.Context(), periodToken(r))
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	defer f.Close()

	name := fmt.Sprintf("laporan-keuangan-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	if err := f.Write(w); err != nil {
		slog.Default().ErrorContext(r.Context(), "cant write workbook",
			slog.String("err", err.Error()),
		)
	}
}

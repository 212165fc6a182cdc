package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard/internal/charting"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// ChartRenderer desenha um gráfico do painel no formato pedido
type ChartRenderer interface {
	Render(w io.Writer, kind, format string, dashboard *domain.Dashboard) error
}

// GetChart renderiza em memória antes de responder para que falhas virem erro JSON
func GetChart(service dashboarding.Dashboarder, renderer ChartRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := httprouter.ParamsFromContext(r.Context()).ByName("chart")

		format, err := charting.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: png, svg", nil)
			return
		}

		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		var buf bytes.Buffer
		err = renderer.Render(&buf, kind, format, dashboard)
		switch {
		case errors.Is(err, charting.ErrUnknownChart):
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Gráfico não encontrado", map[string]any{
				"chart":     kind,
				"available": charting.Kinds(),
			})
			return
		case errors.Is(err, charting.ErrNoChartData):
			apiErrors.WriteError(w, apiErrors.ErrNoChartData, "Sem dados para a seleção", dashboard.Selection)
			return
		case err != nil:
			log.ForContext(r.Context()).WithError(err).WithField("chart", kind).Error("Erro ao renderizar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailure, "Erro ao renderizar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", charting.ContentType(format))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar gráfico")
		}
	})
}

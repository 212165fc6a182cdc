package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard/infrastructure/export"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

// ExportDashboard devolve a planilha XLSX da seleção atual
func ExportDashboard(service dashboarding.Dashboarder, exporter export.DashboardExporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := dashboardFromRequest(w, r, service)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := exporter.WriteDashboard(&buf, dashboard); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("category", dashboard.Selection.Category).
				Error("Erro ao exportar planilha")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailure, "Erro ao gerar planilha", nil)
			return
		}

		fileName := export.FileName(dashboard.Selection, time.Now())
		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar planilha")
		}
	})
}

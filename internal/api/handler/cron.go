package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeReportSnapshot = "report-snapshot"
	CronJobTypeAll            = "all"
)

// CronJob é um job agendado que também pode ser disparado sob demanda
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportSnapshotService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.ReportSnapshotService != nil {
		jobs[CronJobTypeReportSnapshot] = s.ReportSnapshotService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		var selected []string
		switch {
		case cronType == CronJobTypeAll:
			for name := range jobs {
				selected = append(selected, name)
			}
		case cronType == CronJobTypeReportSnapshot:
			if _, ok := jobs[cronType]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de snapshot de relatórios não disponível", nil)
				return
			}
			selected = []string{cronType}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-snapshot, all", nil)
			return
		}

		for _, name := range selected {
			err := jobs[name].TriggerManualSync()
			if errors.Is(err, scheduler.ErrSnapshotRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyActive, "Cron job já em execução", map[string]string{"type": name})
				return
			}
			if err != nil {
				logrus.WithError(err).WithField("job", name).Error("Erro ao iniciar cron job")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
				return
			}
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}

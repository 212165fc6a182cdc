// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/export"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

var ErrSnapshotRunning = errors.New("scheduler: snapshot de relatórios já em execução")

const maxConcurrentSnapshots = 3

type ReportSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
	OutputDir    string
}

// ReportSnapshotService grava periodicamente uma planilha por categoria
type ReportSnapshotService struct {
	scheduler        *gocron.Scheduler
	dashboardService dashboarding.Dashboarder
	exporter         export.DashboardExporter
	config           ReportSnapshotConfig
	now              func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastFiles           []string
	lastError           string
}

func NewReportSnapshotService(
	dashboardService dashboarding.Dashboarder,
	exporter export.DashboardExporter,
	cfg *config.Config,
) *ReportSnapshotService {
	snapshotConfig := ReportSnapshotConfig{
		CronSchedule: cfg.ReportSnapshot.CronSchedule,
		Enabled:      cfg.ReportSnapshot.Enabled,
		OutputDir:    cfg.ReportSnapshot.OutputDir,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"output_dir":    snapshotConfig.OutputDir,
	}).Info("Configuração do snapshot de relatórios carregada")

	return &ReportSnapshotService{
		scheduler:        gocron.NewScheduler(time.Local),
		dashboardService: dashboardService,
		exporter:         exporter,
		config:           snapshotConfig,
		now:              time.Now,
	}
}

func (s *ReportSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.WriteSnapshots(); err != nil && err != ErrSnapshotRunning {
			logrus.WithError(err).Error("Erro no snapshot de relatórios")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar snapshot de relatórios")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// WriteSnapshots gera uma planilha para cada categoria e retorna os caminhos gravados
func (s *ReportSnapshotService) WriteSnapshots() ([]string, error) {
	if !s.tryStart() {
		logrus.Warn("Snapshot de relatórios já está em execução")
		return nil, ErrSnapshotRunning
	}

	return s.run()
}

func (s *ReportSnapshotService) run() ([]string, error) {
	files, err := s.writeSnapshots()
	s.finish(files, err)

	return files, err
}

func (s *ReportSnapshotService) writeSnapshots() ([]string, error) {
	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório %s", s.config.OutputDir)
	}

	categories := s.dashboardService.ListCategories()
	logrus.WithField("categories", len(categories)).Info("Iniciando snapshot de relatórios")

	type result struct {
		path string
		err  error
	}

	results := make(chan result, len(categories))
	semaphore := make(chan struct{}, maxConcurrentSnapshots)
	wg := sync.WaitGroup{}

	for _, category := range categories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			path, err := s.writeCategorySnapshot(category)
			results <- result{path: path, err: err}
		}(category)
	}

	wg.Wait()
	close(results)

	files := make([]string, 0, len(categories))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		files = append(files, r.path)
	}
	sort.Strings(files)

	if firstErr != nil {
		// Um snapshot parcial não é mantido: remove o que já foi gravado
		for _, path := range files {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logrus.WithError(err).WithField("path", path).Warn("Erro ao remover snapshot parcial")
			}
		}

		logrus.WithFields(logrus.Fields{
			"removed": len(files),
			"failed":  len(categories) - len(files),
		}).Error("Snapshot de relatórios abortado")

		return nil, firstErr
	}

	logrus.WithField("files", len(files)).Info("Snapshot de relatórios concluído")

	return files, nil
}

func (s *ReportSnapshotService) writeCategorySnapshot(category string) (string, error) {
	selection := s.dashboardService.ResolveSelection(category, nil)
	dashboard := s.dashboardService.BuildDashboard(selection)

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador do snapshot")
	}

	path := filepath.Join(s.config.OutputDir, fmt.Sprintf("%s-%s", id, export.FileName(selection, s.now())))

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}

	if err := s.exporter.WriteDashboard(file, dashboard); err != nil {
		file.Close()
		os.Remove(path)
		logrus.WithError(err).WithField("category", category).Error("Erro ao gerar snapshot da categoria")
		return "", errors.Wrapf(err, "erro ao gerar snapshot de %s", category)
	}

	if err := file.Close(); err != nil {
		return "", errors.Wrapf(err, "erro ao fechar arquivo %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"category": category,
		"path":     path,
	}).Debug("Snapshot da categoria gravado")

	return path, nil
}

func (s *ReportSnapshotService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *ReportSnapshotService) finish(files []string, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastFiles = files
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// TriggerManualSync inicia um snapshot em background
func (s *ReportSnapshotService) TriggerManualSync() error {
	if !s.tryStart() {
		logrus.Info("Snapshot de relatórios já em andamento, ignorando solicitação manual")
		return ErrSnapshotRunning
	}

	logrus.Info("Iniciando snapshot manual de relatórios")
	go func() {
		if _, err := s.run(); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual de relatórios")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"output_dir":             s.config.OutputDir,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_files":             append([]string{}, s.lastFiles...),
		"last_error":             s.lastError,
	}
}

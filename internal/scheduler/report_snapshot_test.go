package scheduler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/infrastructure/export"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

type failingExporter struct{}

func (failingExporter) WriteDashboard(io.Writer, *domain.Dashboard) error {
	return errors.New("disco cheio")
}

// categoryFailingExporter falha apenas para uma categoria
type categoryFailingExporter struct {
	category string
}

func (e categoryFailingExporter) WriteDashboard(w io.Writer, d *domain.Dashboard) error {
	if d.Selection.Category == e.category {
		return errors.New("disco cheio")
	}
	return export.NewXLSXExporter().WriteDashboard(w, d)
}

// blockingExporter segura a execução até release ser fechado
type blockingExporter struct {
	started chan struct{}
	release chan struct{}
}

func (e blockingExporter) WriteDashboard(w io.Writer, d *domain.Dashboard) error {
	select {
	case e.started <- struct{}{}:
	default:
	}
	<-e.release
	return export.NewXLSXExporter().WriteDashboard(w, d)
}

func newSnapshotService(t *testing.T, exporter export.DashboardExporter, enabled bool) (*ReportSnapshotService, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dashboarder := mocks.NewMockDashboarder(ctrl)

	dashboarder.EXPECT().ListCategories().Return([]string{"Furniture", "Office Supplies"}).AnyTimes()
	dashboarder.EXPECT().ResolveSelection(gomock.Any(), gomock.Nil()).DoAndReturn(
		func(category string, _ []string) domain.Selection {
			return domain.Selection{Category: category, SubCategories: []string{}}
		}).AnyTimes()
	dashboarder.EXPECT().BuildDashboard(gomock.Any()).DoAndReturn(
		func(selection domain.Selection) *domain.Dashboard {
			return &domain.Dashboard{Selection: selection}
		}).AnyTimes()

	dir := filepath.Join(t.TempDir(), "reports")
	cfg := &config.Config{ReportSnapshot: config.ReportSnapshot{
		CronSchedule: "0 6 * * *",
		Enabled:      enabled,
		OutputDir:    dir,
	}}

	service := NewReportSnapshotService(dashboarder, exporter, cfg)
	service.now = func() time.Time { return time.Date(2024, time.March, 5, 6, 0, 0, 0, time.UTC) }

	return service, dir
}

func TestReportSnapshotService_WriteSnapshots(t *testing.T) {
	service, dir := newSnapshotService(t, export.NewXLSXExporter(), false)

	files, err := service.WriteSnapshots()
	require.NoError(t, err)
	require.Len(t, files, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	names := []string{filepath.Base(files[0]), filepath.Base(files[1])}
	assert.True(t, strings.HasSuffix(names[0], "sales-furniture-20240305-060000.xlsx") ||
		strings.HasSuffix(names[1], "sales-furniture-20240305-060000.xlsx"))

	for _, file := range files {
		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.ElementsMatch(t, files, status["last_files"])
	assert.Empty(t, status["last_error"])
}

func TestReportSnapshotService_ExporterFailure(t *testing.T) {
	service, dir := newSnapshotService(t, failingExporter{}, false)

	files, err := service.WriteSnapshots()
	require.Error(t, err)
	assert.Empty(t, files)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "arquivos incompletos devem ser removidos")
	assert.Contains(t, service.GetStatus()["last_error"], "disco cheio")
}

func TestReportSnapshotService_PartialFailureRemovesWrittenFiles(t *testing.T) {
	service, dir := newSnapshotService(t, categoryFailingExporter{category: "Office Supplies"}, false)

	files, err := service.WriteSnapshots()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Office Supplies")
	assert.Empty(t, files)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "snapshot parcial deve ser removido")

	status := service.GetStatus()
	assert.Empty(t, status["last_files"])
	assert.Contains(t, status["last_error"], "disco cheio")
}

func TestReportSnapshotService_TriggerManualSyncRejectsConcurrentRun(t *testing.T) {
	exporter := blockingExporter{started: make(chan struct{}, 1), release: make(chan struct{})}
	service, dir := newSnapshotService(t, exporter, false)

	require.NoError(t, service.TriggerManualSync())
	assert.Equal(t, ErrSnapshotRunning, service.TriggerManualSync())

	<-exporter.started
	assert.Equal(t, true, service.GetStatus()["sync_running"])
	close(exporter.release)

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 5*time.Second, 20*time.Millisecond)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReportSnapshotService_AlreadyRunning(t *testing.T) {
	service, _ := newSnapshotService(t, export.NewXLSXExporter(), false)
	service.syncRunning = true

	_, err := service.WriteSnapshots()
	assert.Equal(t, ErrSnapshotRunning, err)
	assert.Equal(t, ErrSnapshotRunning, service.TriggerManualSync())
}

func TestReportSnapshotService_TriggerManualSync(t *testing.T) {
	service, dir := newSnapshotService(t, export.NewXLSXExporter(), false)

	require.NoError(t, service.TriggerManualSync())

	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		lastFiles, _ := status["last_files"].([]string)
		return status["sync_running"] == false && len(lastFiles) == 2
	}, 5*time.Second, 20*time.Millisecond)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReportSnapshotService_StartDisabled(t *testing.T) {
	service, _ := newSnapshotService(t, export.NewXLSXExporter(), false)

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, service.scheduler.Len())
}

func TestReportSnapshotService_StartInvalidCron(t *testing.T) {
	service, _ := newSnapshotService(t, export.NewXLSXExporter(), true)
	service.config.CronSchedule = "não é cron"

	assert.Error(t, service.Start(context.Background()))
}

func TestReportSnapshotService_StartEnabled(t *testing.T) {
	service, _ := newSnapshotService(t, export.NewXLSXExporter(), true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Equal(t, 1, service.scheduler.Len())
}

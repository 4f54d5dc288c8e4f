package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/loan-earnings/internal/domain"
	"github.com/segyhp/loan-earnings/tests/mocks"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func newTestImporter(repo *mocks.MockEarningsRepository, cache *mocks.MockTableCache) *Importer {
	importer := NewImporter(repo, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
	importer.now = func() time.Time { return time.Date(2026, 10, 1, 3, 0, 0, 0, time.UTC) }
	return importer
}

func TestImportDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "earnings_median.csv", "Year,History\n1,31000\n2,32000\n")
	writeFile(t, dir, "earnings_median_fulltime.csv", "Year,History\n1,35000\n")
	writeFile(t, dir, "notes.txt", "ignored")

	repo := &mocks.MockEarningsRepository{}
	cache := &mocks.MockTableCache{}
	repo.On("SaveTable", mock.Anything, mock.MatchedBy(func(table *domain.EarningsTable) bool {
		return table.Dataset == "earnings_median" && len(table.Records) == 2 && table.ImportID != ""
	})).Return(nil)
	repo.On("SaveTable", mock.Anything, mock.MatchedBy(func(table *domain.EarningsTable) bool {
		return table.Dataset == "earnings_median_fulltime" && len(table.Records) == 1
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, "earnings_median").Return(nil)
	cache.On("Invalidate", mock.Anything, "earnings_median_fulltime").Return(errors.New("redis down"))

	report, err := newTestImporter(repo, cache).ImportDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"earnings_median", "earnings_median_fulltime"}, report.Datasets)
	assert.Equal(t, 3, report.Records)
	assert.NotEmpty(t, report.ImportID)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestImportDir_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "earnings_median.csv", "Year,History\n1,31000\n")

	repo := &mocks.MockEarningsRepository{}
	cache := &mocks.MockTableCache{}
	repo.On("SaveTable", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	report, err := newTestImporter(repo, cache).ImportDir(context.Background(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save earnings_median")
	require.NotNil(t, report)
	assert.Empty(t, report.Datasets)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestImportDir_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "earnings_p25.csv", "Period,History\n1,31000\n")

	_, err := newTestImporter(&mocks.MockEarningsRepository{}, &mocks.MockTableCache{}).ImportDir(context.Background(), dir)

	assert.ErrorIs(t, err, ErrMissingPeriodColumn)
}

func TestImportDir_PartialFailureReportsSavedDatasets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "earnings_median.csv", "Year,History\n1,31000\n2,32000\n")
	writeFile(t, dir, "earnings_p25.csv", "Period,History\n1,21000\n")

	repo := &mocks.MockEarningsRepository{}
	cache := &mocks.MockTableCache{}
	repo.On("SaveTable", mock.Anything, mock.MatchedBy(func(table *domain.EarningsTable) bool {
		return table.Dataset == "earnings_median"
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, "earnings_median").Return(nil)

	report, err := newTestImporter(repo, cache).ImportDir(context.Background(), dir)

	assert.ErrorIs(t, err, ErrMissingPeriodColumn)
	require.NotNil(t, report)
	assert.Equal(t, []string{"earnings_median"}, report.Datasets)
	assert.Equal(t, 2, report.Records)
	repo.AssertExpectations(t)
}

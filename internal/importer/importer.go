package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/segyhp/loan-earnings/internal/cache"
	"github.com/segyhp/loan-earnings/internal/domain"
	"github.com/segyhp/loan-earnings/internal/repository"
)

const maxConcurrentFiles = 4

// Report summarises one import run.
type Report struct {
	ImportID string
	Datasets []string
	Records  int
}

// Importer loads earnings_*.csv files from a directory into the repository
// and drops the cached copy of every dataset it replaces.
type Importer struct {
	repo   repository.EarningsRepository
	cache  cache.TableCache
	logger *slog.Logger
	now    func() time.Time
}

func NewImporter(repo repository.EarningsRepository, cache cache.TableCache, logger *slog.Logger) *Importer {
	return &Importer{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// ImportDir imports every dataset file in dir. Files whose name is not a
// dataset key are skipped.
func (i *Importer) ImportDir(ctx context.Context, dir string) (*Report, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "earnings_*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(paths)

	report := &Report{ImportID: uuid.NewString()}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)
	for _, path := range paths {
		path := path
		dataset := strings.TrimSuffix(filepath.Base(path), ".csv")
		if _, ok := domain.ParseDatasetKey(dataset); !ok {
			i.logger.Warn("skipping file with unknown dataset name", "path", path)
			continue
		}

		g.Go(func() error {
			records, err := i.importFile(ctx, path, dataset, report.ImportID)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Datasets = append(report.Datasets, dataset)
			report.Records += records
			mu.Unlock()
			return nil
		})
	}

	// Datasets saved before a failure stay committed and are reported with it.
	err = g.Wait()
	sort.Strings(report.Datasets)
	return report, err
}

func (i *Importer) importFile(ctx context.Context, path, dataset, importID string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	table, err := ParseCSV(file, dataset)
	if err != nil {
		return 0, err
	}
	table.ImportID = importID
	table.ImportedAt = i.now().UTC()

	if err := i.repo.SaveTable(ctx, table); err != nil {
		return 0, fmt.Errorf("save %s: %w", dataset, err)
	}

	// A failed invalidation leaves the old table cached until CACHE_TTL.
	if err := i.cache.Invalidate(ctx, dataset); err != nil {
		i.logger.Warn("failed to invalidate cached dataset", "dataset", dataset, "error", err)
	}

	i.logger.Info("dataset imported", "dataset", dataset, "records", len(table.Records), "labels", len(table.Labels), "import_id", importID)
	return len(table.Records), nil
}

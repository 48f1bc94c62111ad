package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/testforge/testforge/internal/models"
)

//go:generate go tool mockgen -source=source.go -destination=mock_source.go -package=dataset

// Source provides metric rows for a granularity level.
type Source interface {
	SetRows(ctx context.Context, level Level) ([]models.SetRow, error)
	CaseRows(ctx context.Context, level Level) ([]models.CaseRow, error)
}

// DirSource reads metric CSV files from a data directory laid out as
// "Test set metrics/tsm_<level>.csv" and "Test case metrics/tcm_<level>.csv".
type DirSource struct {
	Dir string
}

// NewDirSource returns a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// SetRows loads and decodes the test-set file for level.
func (s *DirSource) SetRows(ctx context.Context, level Level) ([]models.SetRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := Path(s.Dir, FamilySet, level)
	raw, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	rows, err := DecodeSetRows(path, level, raw)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded test set metrics", "path", path, "rows", len(rows))
	return rows, nil
}

// CaseRows loads and decodes the test-case file for level.
func (s *DirSource) CaseRows(ctx context.Context, level Level) ([]models.CaseRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := Path(s.Dir, FamilyCase, level)
	raw, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	rows, err := DecodeCaseRows(path, level, raw)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded test case metrics", "path", path, "rows", len(rows))
	return rows, nil
}

// Dataset holds both metric families at every level.
type Dataset struct {
	Set  map[Level][]models.SetRow
	Case map[Level][]models.CaseRow
}

// LoadAll loads every level of both families concurrently. The first error
// cancels the remaining loads.
func LoadAll(ctx context.Context, src Source) (*Dataset, error) {
	ds := &Dataset{
		Set:  make(map[Level][]models.SetRow, len(Levels)),
		Case: make(map[Level][]models.CaseRow, len(Levels)),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, level := range Levels {
		g.Go(func() error {
			rows, err := src.SetRows(gctx, level)
			if err != nil {
				return fmt.Errorf("loading test set metrics (%s): %w", level, err)
			}
			mu.Lock()
			ds.Set[level] = rows
			mu.Unlock()
			return nil
		})
		g.Go(func() error {
			rows, err := src.CaseRows(gctx, level)
			if err != nil {
				return fmt.Errorf("loading test case metrics (%s): %w", level, err)
			}
			mu.Lock()
			ds.Case[level] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

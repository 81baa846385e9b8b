package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/pkg/fileutil"
	"go.uber.org/zap"
)

// CSVTableRepository implements the TableRepository interface for CSV files
type CSVTableRepository struct {
	FilePath string
	role     domain.Role
	logger   *zap.Logger
}

// NewCSVTableRepository creates a new CSVTableRepository
func NewCSVTableRepository(filePath string, role domain.Role, logger *zap.Logger) *CSVTableRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CSVTableRepository{
		FilePath: filePath,
		role:     role,
		logger:   logger,
	}
}

func (r *CSVTableRepository) Role() domain.Role {
	return r.role
}

// Load reads the whole file. Short rows are padded with empty cells and long rows
// truncated to the header width.
func (r *CSVTableRepository) Load(ctx context.Context) (domain.Table, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return domain.Table{}, fmt.Errorf("reading %s header: %w", r.role, err)
	}

	name := strings.TrimSuffix(filepath.Base(r.FilePath), filepath.Ext(r.FilePath))
	table := domain.NewTable(name, cleanHeader(header)...)
	width := len(table.Columns)
	ragged := 0

	var rowProcessorFn = func(line int, row []string) error {
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		// Blank lines carry nothing
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" && width > 1 {
			return nil
		}

		if len(row) != width {
			ragged++
			r.logger.Debug("ragged csv row",
				zap.String("role", string(r.role)),
				zap.Int("line", line),
				zap.Int("fields", len(row)),
				zap.Int("expected", width))
		}

		table.AppendRow(row...)
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return domain.Table{}, fmt.Errorf("processing %s rows: %w", r.role, err)
	}

	if ragged > 0 {
		r.logger.Warn("csv rows padded or truncated to header width",
			zap.String("role", string(r.role)),
			zap.String("file", r.FilePath),
			zap.Int("rows", ragged))
	}

	return table, nil
}

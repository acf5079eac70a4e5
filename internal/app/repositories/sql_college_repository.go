package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/eamcet-predictor/internal/app/models"
	"github.com/yigit/eamcet-predictor/internal/db"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
	"github.com/yigit/eamcet-predictor/internal/pkg/metrics"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// rows per INSERT statement, well below the bind-variable limits of both drivers
const upsertBatchSize = 200

// SQLCollegeRepository reads and loads colleges on Postgres or SQLite
type SQLCollegeRepository struct {
	db db.Database
	sb squirrel.StatementBuilderType
}

// NewSQLCollegeRepository creates a new SQLCollegeRepository
func NewSQLCollegeRepository(database db.Database) *SQLCollegeRepository {
	return &SQLCollegeRepository{
		db: database,
		sb: db.StatementBuilder(database),
	}
}

// applyCollegeFilter adds the WHERE clauses of a filter to a select
func applyCollegeFilter(q squirrel.SelectBuilder, f CollegeFilter) squirrel.SelectBuilder {
	in := map[string][]string{
		"instcode":    f.Instcodes,
		"branch_code": f.Branches,
		"district":    f.Districts,
		"region":      f.Regions,
		"tier":        f.Tiers,
	}
	// fixed order keeps generated SQL stable
	for _, col := range []string{"instcode", "branch_code", "district", "region", "tier"} {
		if values := in[col]; len(values) > 0 {
			q = q.Where(squirrel.Eq{col: values})
		}
	}
	if f.ExcludeWomenColleges {
		q = q.Where(squirrel.Or{
			squirrel.NotEq{"division": models.DivisionWomen},
			squirrel.Eq{"division": nil},
		})
	}
	if name := strings.TrimSpace(f.NameContains); name != "" {
		q = q.Where(`LOWER(institution_name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(name))+"%")
	}
	return q
}

// FindAll returns the rows matching filter ordered by id
func (r *SQLCollegeRepository) FindAll(ctx context.Context, filter CollegeFilter) (colleges []*models.College, err error) {
	defer func(start time.Time) {
		metrics.RecordDBQuery("find_all", time.Since(start), err)
	}(time.Now())

	query, args, err := applyCollegeFilter(
		r.sb.Select(selectColumns()...).From(collegesTable), filter,
	).OrderBy("id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find colleges SQL")
		return nil, fmt.Errorf("failed to build find colleges query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find colleges query")
		return nil, fmt.Errorf("error querying colleges: %w", err)
	}
	defer rows.Close()

	colleges = []*models.College{}
	for rows.Next() {
		c := &models.College{}
		if err := rows.Scan(scanDest(c)...); err != nil {
			logger.Error().Err(err).Msg("Error scanning college row")
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating college rows")
		return nil, fmt.Errorf("error iterating college rows: %w", err)
	}

	return colleges, nil
}

// SaveAll upserts colleges by id inside one transaction
func (r *SQLCollegeRepository) SaveAll(ctx context.Context, colleges []*models.College) (int, error) {
	if len(colleges) == 0 {
		return 0, nil
	}

	cols := collegeColumns()
	sets := make([]string, 0, len(cols)-1)
	for _, c := range cols[1:] {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	conflict := "ON CONFLICT (id) DO UPDATE SET " + strings.Join(sets, ", ")

	written := 0
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx db.Querier) error {
		for start := 0; start < len(colleges); start += upsertBatchSize {
			end := start + upsertBatchSize
			if end > len(colleges) {
				end = len(colleges)
			}

			insert := r.sb.Insert(collegesTable).Columns(cols...)
			for _, c := range colleges[start:end] {
				insert = insert.Values(insertValues(c)...)
			}
			query, args, err := insert.Suffix(conflict).ToSql()
			if err != nil {
				return fmt.Errorf("failed to build upsert colleges query: %w", err)
			}
			if err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("error upserting colleges: %w", err)
			}
			written += end - start
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int("rows", len(colleges)).Msg("Error saving colleges")
		return 0, err
	}

	return written, nil
}

// Count returns the number of rows in the colleges table
func (r *SQLCollegeRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.sb.Select("COUNT(*)").From(collegesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count colleges query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting colleges")
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return count, nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// builder returns a squirrel builder with PostgreSQL placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern matching it as a
// literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// searchAny matches the term against any of the columns.
func searchAny(term string, columns ...string) squirrel.Sqlizer {
	pattern := containsPattern(term)
	or := make(squirrel.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}

// pageQueries derives the count and page statements from one filtered select.
func pageQueries(base squirrel.SelectBuilder, req paging.Request, orderBy ...string) (count, page squirrel.SelectBuilder) {
	count = builder().Select("COUNT(*)").FromSelect(base, "sub")
	page = base.
		OrderBy(orderBy...).
		Limit(uint64(req.Limit())).
		Offset(uint64(req.Offset()))
	return count, page
}

// selectPage runs the count and page statements built by pageQueries.
func selectPage[T any](ctx context.Context, q database.Querier, count, page squirrel.SelectBuilder) ([]T, int64, error) {
	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count rows: %w", err)
	}

	items := make([]T, 0)
	if total == 0 {
		return items, 0, nil
	}

	pageSQL, pageArgs, err := page.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}
	if err := pgxscan.Select(ctx, q, &items, pageSQL, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("select page: %w", err)
	}

	return items, total, nil
}

// exists runs SELECT EXISTS over the given subquery.
func exists(ctx context.Context, q database.Querier, sub squirrel.SelectBuilder) (bool, error) {
	sql, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var found bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// upperEq compares an uppercased column with an already uppercased value.
func upperEq(column, upper string) squirrel.Sqlizer {
	return squirrel.Expr("UPPER("+column+") = ?", upper)
}

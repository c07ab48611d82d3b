package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

// PageRequest bundles everything needed to execute one paginated list query.
type PageRequest struct {
	Table        string
	Columns      []string
	Predicate    Predicate
	Order        []OrderClause
	DefaultOrder string
	Page         int
	Size         int
}

// FetchPage runs the bounded fetch and the unbounded count for a page as two
// concurrent store operations, joining before returning. If either fails the
// whole call fails; no partial page is ever produced.
func FetchPage[Row any](ctx context.Context, db *sqlx.DB, req PageRequest) ([]Row, int, error) {
	where, args := req.Predicate.SQL(1)
	whereSQL := ""
	if where != "" {
		whereSQL = " WHERE " + where
	}

	order := OrderSQL(req.Order)
	if order == "" {
		order = req.DefaultOrder
	}
	orderSQL := ""
	if order != "" {
		orderSQL = " ORDER BY " + order
	}

	skip := (req.Page - 1) * req.Size
	selectSQL := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		strings.Join(req.Columns, ", "), req.Table, whereSQL, orderSQL, req.Size, skip)
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", req.Table, whereSQL)

	var (
		rows  []Row
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := db.SelectContext(gctx, &rows, selectSQL, args...); err != nil {
			return fmt.Errorf("fetch page from %s: %w", req.Table, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := db.GetContext(gctx, &total, countSQL, args...); err != nil {
			return fmt.Errorf("count %s: %w", req.Table, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

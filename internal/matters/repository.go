package matters

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
)

type Repository interface {
	// Get scopes the lookup by customer id: a matter id under the wrong
	// customer resolves to not-found.
	Get(ctx context.Context, customerID, matterID int64) (*Matter, error)
	List(ctx context.Context, req ListMattersRequest) ([]Matter, int, error)
	Create(ctx context.Context, matter Matter) (int64, error)
	Update(ctx context.Context, customerID, matterID int64, updates map[string]interface{}) error
	Delete(ctx context.Context, customerID, matterID int64) error
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Get(ctx context.Context, customerID, matterID int64) (*Matter, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, description, status, customer_id, created_at
		FROM matters
		WHERE id = $1 AND customer_id = $2
	`, matterID, customerID)
	return scanMatter(row)
}

func (r *repository) List(ctx context.Context, req ListMattersRequest) ([]Matter, int, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if req.CustomerID != nil {
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", argPos))
		args = append(args, *req.CustomerID)
		argPos++
	}
	if req.Status != nil && *req.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}
	if req.Search != nil && *req.Search != "" {
		searchPattern := "%" + *req.Search + "%"
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, searchPattern)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + conditions[0]
		for i := 1; i < len(conditions); i++ {
			whereClause += " AND " + conditions[i]
		}
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM matters %s", whereClause)
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, status, customer_id, created_at
		FROM matters
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, req.Limit, req.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var matters []Matter
	for rows.Next() {
		m, err := scanMatterRow(rows)
		if err != nil {
			return nil, 0, err
		}
		matters = append(matters, *m)
	}

	return matters, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, matter Matter) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO matters (title, description, status, customer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		matter.Title,
		pgtype.Text{String: derefString(matter.Description), Valid: matter.Description != nil},
		matter.Status,
		matter.CustomerID,
	).Scan(&id)
	return id, err
}

func (r *repository) Update(ctx context.Context, customerID, matterID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	query := "UPDATE matters SET "
	var args []interface{}
	argPos := 1

	for _, col := range []string{"title", "description", "status"} {
		if v, ok := updates[col]; ok {
			if len(args) > 0 {
				query += ", "
			}
			query += fmt.Sprintf("%s = $%d", col, argPos)
			args = append(args, v)
			argPos++
		}
	}

	query += fmt.Sprintf(" WHERE id = $%d AND customer_id = $%d", argPos, argPos+1)
	args = append(args, matterID, customerID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, customerID, matterID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM matters WHERE id = $1 AND customer_id = $2`, matterID, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, customerID).Scan(&exists)
	return exists, err
}

func scanMatter(row pgx.Row) (*Matter, error) {
	var m Matter
	var description pgtype.Text
	var createdAt pgtype.Timestamptz
	err := row.Scan(&m.ID, &m.Title, &description, &m.Status, &m.CustomerID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if description.Valid {
		m.Description = &description.String
	}
	if createdAt.Valid {
		m.CreatedAt = createdAt.Time
	}
	return &m, nil
}

func scanMatterRow(rows pgx.Rows) (*Matter, error) {
	var m Matter
	var description pgtype.Text
	var createdAt pgtype.Timestamptz
	if err := rows.Scan(&m.ID, &m.Title, &description, &m.Status, &m.CustomerID, &createdAt); err != nil {
		return nil, err
	}
	if description.Valid {
		m.Description = &description.String
	}
	if createdAt.Valid {
		m.CreatedAt = createdAt.Time
	}
	return &m, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

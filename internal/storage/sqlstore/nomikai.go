package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/nomikai/internal/models"
	"github.com/mmynk/nomikai/internal/storage"
)

// UpdateNomikaiAmount checks the row exists, then overwrites its amount.
// Both statements run on the same connection but not in a transaction.
func (s *SQLStore) UpdateNomikaiAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	return s.withConn(ctx, "update_amount", func(conn *sql.Conn) error {
		var count int
		err := conn.QueryRowContext(ctx,
			s.dialect.Rebind("SELECT COUNT(*) FROM Nomikai WHERE id = ?"),
			id,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check nomikai existence: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("nomikai %d: %w", id, storage.ErrNotFound)
		}

		_, err = conn.ExecContext(ctx,
			s.dialect.Rebind("UPDATE Nomikai SET amount = ? WHERE id = ?"),
			amount, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update nomikai amount: %w", err)
		}
		return nil
	})
}

// CreateNomikaiRows inserts one row per participant and writes the assigned
// IDs back into rows.
func (s *SQLStore) CreateNomikaiRows(ctx context.Context, rows []models.Nomikai) error {
	query := s.dialect.Rebind(s.dialect.insertNomikai)

	return s.withBatch(ctx, "create_nomikai", func(q querier) error {
		for i := range rows {
			row := &rows[i]
			args := []any{row.EventDate, row.EventName, row.Participant, row.Amount, row.PaymentFlag}

			if s.dialect.returnsID {
				if err := q.QueryRowContext(ctx, query, args...).Scan(&row.ID); err != nil {
					return fmt.Errorf("failed to insert nomikai row for %q: %w", row.Participant, err)
				}
				continue
			}

			res, err := q.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to insert nomikai row for %q: %w", row.Participant, err)
			}
			if id, err := res.LastInsertId(); err == nil {
				row.ID = id
			}
		}
		return nil
	})
}

// SearchNomikai returns rows matching every non-empty filter field, ordered by id.
func (s *SQLStore) SearchNomikai(ctx context.Context, filter models.NomikaiFilter) ([]models.Nomikai, error) {
	var (
		where []string
		args  []any
	)
	if filter.EventName != "" {
		where = append(where, "event_name LIKE ?")
		args = append(args, "%"+filter.EventName+"%")
	}
	if filter.EventDate != "" {
		where = append(where, "event_date = ?")
		args = append(args, filter.EventDate)
	}
	if filter.Participant != "" {
		where = append(where, "participants LIKE ?")
		args = append(args, "%"+filter.Participant+"%")
	}

	query := "SELECT id, event_date, event_name, participants, amount, payment_flag FROM Nomikai"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	results := []models.Nomikai{}
	err := s.withConn(ctx, "search_nomikai", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, s.dialect.Rebind(query), args...)
		if err != nil {
			return fmt.Errorf("failed to search nomikai: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var n models.Nomikai
			if err := rows.Scan(&n.ID, &n.EventDate, &n.EventName, &n.Participant, &n.Amount, &n.PaymentFlag); err != nil {
				return fmt.Errorf("failed to scan nomikai: %w", err)
			}
			results = append(results, n)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate nomikai: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// UpdatePaymentFlags sets payment_flag row by row. Rows that do not exist are
// reported as unmatched and do not stop the batch.
func (s *SQLStore) UpdatePaymentFlags(ctx context.Context, updates []models.PaymentFlagUpdate) ([]storage.FlagUpdateResult, error) {
	query := s.dialect.Rebind("UPDATE Nomikai SET payment_flag = ? WHERE id = ?")
	results := make([]storage.FlagUpdateResult, 0, len(updates))

	err := s.withBatch(ctx, "update_payment_flags", func(q querier) error {
		for _, u := range updates {
			res, err := q.ExecContext(ctx, query, u.PaymentFlag, u.ID)
			if err != nil {
				return fmt.Errorf("failed to update payment flag for %d: %w", u.ID, err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read rows affected for %d: %w", u.ID, err)
			}
			results = append(results, storage.FlagUpdateResult{ID: u.ID, Matched: affected > 0})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

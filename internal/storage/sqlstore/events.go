package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/nomikai/internal/models"
)

// CreateEvent inserts a legacy event record. Null fields are stored as NULL.
func (s *SQLStore) CreateEvent(ctx context.Context, event models.Event) error {
	return s.withConn(ctx, "create_event", func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx,
			s.dialect.Rebind("INSERT INTO Events (EventDate, TotalAmount) VALUES (?, ?)"),
			event.EventDate, event.TotalAmount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		return nil
	})
}

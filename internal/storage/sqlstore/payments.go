package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/nomikai/internal/models"
)

// ListPayments retrieves all payments ordered by PaymentID.
func (s *SQLStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}

	err := s.withConn(ctx, "list_payments", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			"SELECT PaymentID, EventID, ParticipantID, AmountPaid FROM Payments ORDER BY PaymentID",
		)
		if err != nil {
			return fmt.Errorf("failed to list payments: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p models.Payment
			if err := rows.Scan(&p.PaymentID, &p.EventID, &p.ParticipantID, &p.AmountPaid); err != nil {
				return fmt.Errorf("failed to scan payment: %w", err)
			}
			payments = append(payments, p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate payments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}

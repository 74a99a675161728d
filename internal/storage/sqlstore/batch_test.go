package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/nomikai/internal/models"
	"github.com/mmynk/nomikai/internal/storage"
)

const (
	insertQuery = "INSERT INTO Nomikai (event_date, event_name, participants, amount, payment_flag) VALUES (?, ?, ?, ?, ?)"
	flagQuery   = "UPDATE Nomikai SET payment_flag = ? WHERE id = ?"
)

var errBoom = errors.New("connection reset by peer")

func NewMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err, "an error was not expected when opening a stub database connection")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func threeRows() []models.Nomikai {
	return []models.Nomikai{
		{EventName: "Year end party", Participant: "Alice", Amount: decimal.NewFromInt(100)},
		{EventName: "Year end party", Participant: "Bob", Amount: decimal.NewFromInt(100)},
		{EventName: "Year end party", Participant: "Carol", Amount: decimal.NewFromInt(100)},
	}
}

func anyInsertArgs() []driver.Value {
	return []driver.Value{sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()}
}

func TestCreateNomikaiRows_Batch(t *testing.T) {
	t.Run("independent mode keeps earlier rows on mid-batch failure", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, SQLite)

		mock.ExpectExec(insertQuery).WithArgs(anyInsertArgs()...).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertQuery).WithArgs(anyInsertArgs()...).WillReturnError(errBoom)

		rows := threeRows()
		err := store.CreateNomikaiRows(context.Background(), rows)

		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, int64(1), rows[0].ID)
		assert.Zero(t, rows[2].ID, "third insert must not run after a failure")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("atomic mode rolls back on mid-batch failure", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, SQLite, WithBatchMode(storage.BatchAtomic))

		mock.ExpectBegin()
		mock.ExpectExec(insertQuery).WithArgs(anyInsertArgs()...).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertQuery).WithArgs(anyInsertArgs()...).WillReturnError(errBoom)
		mock.ExpectRollback()

		err := store.CreateNomikaiRows(context.Background(), threeRows())

		assert.ErrorIs(t, err, errBoom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("atomic mode commits all rows", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, SQLite, WithBatchMode(storage.BatchAtomic))

		mock.ExpectBegin()
		for i := int64(1); i <= 3; i++ {
			mock.ExpectExec(insertQuery).WithArgs(anyInsertArgs()...).WillReturnResult(sqlmock.NewResult(i, 1))
		}
		mock.ExpectCommit()

		rows := threeRows()
		err := store.CreateNomikaiRows(context.Background(), rows)

		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres reads IDs from RETURNING", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, Postgres)

		query := "INSERT INTO Nomikai (event_date, event_name, participants, amount, payment_flag) VALUES ($1, $2, $3, $4, $5) RETURNING id"
		for i := int64(10); i < 13; i++ {
			mock.ExpectQuery(query).WithArgs(anyInsertArgs()...).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i))
		}

		rows := threeRows()
		err := store.CreateNomikaiRows(context.Background(), rows)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), rows[2].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdatePaymentFlags_Batch(t *testing.T) {
	updates := []models.PaymentFlagUpdate{
		{ID: 1, PaymentFlag: true},
		{ID: 2, PaymentFlag: true},
		{ID: 3, PaymentFlag: false},
	}

	t.Run("independent mode aborts remaining updates", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, SQLite)

		mock.ExpectExec(flagQuery).WithArgs(true, int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(flagQuery).WithArgs(true, int64(2)).WillReturnError(errBoom)

		results, err := store.UpdatePaymentFlags(context.Background(), updates)

		assert.ErrorIs(t, err, errBoom)
		assert.Nil(t, results)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("atomic mode rolls back", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, SQLite, WithBatchMode(storage.BatchAtomic))

		mock.ExpectBegin()
		mock.ExpectExec(flagQuery).WithArgs(true, int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(flagQuery).WithArgs(true, int64(2)).WillReturnError(errBoom)
		mock.ExpectRollback()

		_, err := store.UpdatePaymentFlags(context.Background(), updates)

		assert.ErrorIs(t, err, errBoom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected is not an error", func(t *testing.T) {
		db, mock := NewMock(t)
		store := NewFromDB(db, SQLite)

		mock.ExpectExec(flagQuery).WithArgs(true, int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(flagQuery).WithArgs(true, int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(flagQuery).WithArgs(false, int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

		results, err := store.UpdatePaymentFlags(context.Background(), updates)

		require.NoError(t, err)
		assert.Equal(t, []storage.FlagUpdateResult{
			{ID: 1, Matched: true},
			{ID: 2, Matched: false},
			{ID: 3, Matched: true},
		}, results)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateNomikaiAmount_NotFoundDoesNotWrite(t *testing.T) {
	db, mock := NewMock(t)
	store := NewFromDB(db, SQLServer)

	mock.ExpectQuery("SELECT COUNT(*) FROM Nomikai WHERE id = @p1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := store.UpdateNomikaiAmount(context.Background(), 42, decimal.NewFromInt(500))

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet(), "no UPDATE may be issued for a missing row")
}

func TestErrorObserver(t *testing.T) {
	db, mock := NewMock(t)

	var observed []string
	store := NewFromDB(db, SQLite, WithErrorObserver(func(op string) {
		observed = append(observed, op)
	}))

	mock.ExpectQuery("SELECT PaymentID, EventID, ParticipantID, AmountPaid FROM Payments ORDER BY PaymentID").
		WillReturnError(errBoom)

	_, err := store.ListPayments(context.Background())

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"list_payments"}, observed)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/nomikai/internal/calculator"
	"github.com/mmynk/nomikai/internal/models"
	"github.com/mmynk/nomikai/internal/storage"
)

// ExpenseService records nomikai events, splits their cost and tracks who
// has paid.
type ExpenseService struct {
	store      storage.Store
	validate   *validator.Validate
	splitScale int32
}

// Option configures an ExpenseService.
type Option func(*ExpenseService)

// WithSplitScale sets how many fractional digits a saved share may carry.
// Anything below that precision is added to the first participant's share.
func WithSplitScale(places int32) Option {
	return func(s *ExpenseService) {
		if places >= 0 {
			s.splitScale = places
		}
	}
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, opts ...Option) *ExpenseService {
	v := validator.New()
	// Decimals validate as their sign, so gt=0 means strictly positive
	// without a lossy float conversion.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	s := &ExpenseService{store: store, validate: v}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate splits req.TotalAmount evenly and stores the share on the
// Nomikai row req.EventID. No backend call is made when the participant
// count is not positive.
func (s *ExpenseService) Calculate(ctx context.Context, req CalculateRequest) (*CalculateResult, error) {
	slog.Info("Calculate processed a request",
		"event_id", req.EventID,
		"participant_id", req.ParticipantID,
		"participants", req.NumberOfParticipants,
	)

	if err := s.check(req, "number of participants must be greater than zero"); err != nil {
		return nil, err
	}

	share, err := calculator.Share(req.TotalAmount, req.NumberOfParticipants)
	if err != nil {
		return nil, invalidRequest(err.Error())
	}

	if err := s.store.UpdateNomikaiAmount(ctx, req.EventID, share); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			slog.Warn("Calculate: event not found", "event_id", req.EventID)
			return nil, notFound("EventID does not exist.")
		}
		slog.Error("Calculate failed", "event_id", req.EventID, "error", err)
		return nil, backend("failed to store split", err)
	}

	return &CalculateResult{
		TotalAmount:          req.TotalAmount,
		NumberOfParticipants: req.NumberOfParticipants,
		AmountPerParticipant: share,
	}, nil
}

// ListPayments returns every recorded payment.
func (s *ExpenseService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	slog.Info("ListPayments processed a request")

	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		return nil, backend("failed to list payments", err)
	}
	return payments, nil
}

// SaveEvent stores a legacy event record as received. No field is validated.
func (s *ExpenseService) SaveEvent(ctx context.Context, req SaveEventRequest) error {
	slog.Info("SaveEvent processed a request")

	event := models.Event{TotalAmount: req.TotalAmount}
	if req.EventDate != nil {
		event.EventDate.String = *req.EventDate
		event.EventDate.Valid = true
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("SaveEvent failed", "error", err)
		return backend("failed to save event", err)
	}
	return nil
}

// SaveNomikai splits req.Amount between the participants named in
// req.Participants and stores one row per participant. The returned rows
// carry their assigned IDs.
func (s *ExpenseService) SaveNomikai(ctx context.Context, req SaveNomikaiRequest) ([]models.Nomikai, error) {
	slog.Info("SaveNomikai processed a request",
		"event_name", req.EventName,
		"event_date", req.EventDate.String(),
		"amount", req.Amount.String(),
	)

	if err := s.check(req, "amount must be greater than zero"); err != nil {
		return nil, err
	}

	names := calculator.ParseParticipants(req.Participants)
	if len(names) == 0 {
		return nil, invalidRequest("at least one participant is required")
	}

	shares, err := calculator.SplitEvenly(req.Amount, len(names), s.splitScale)
	if err != nil {
		return nil, invalidRequest(err.Error())
	}

	rows := make([]models.Nomikai, len(names))
	for i, name := range names {
		rows[i] = models.Nomikai{
			EventDate:   req.EventDate,
			EventName:   req.EventName,
			Participant: name,
			Amount:      shares[i],
			PaymentFlag: req.PaymentFlag,
		}
	}

	if err := s.store.CreateNomikaiRows(ctx, rows); err != nil {
		slog.Error("SaveNomikai failed", "event_name", req.EventName, "error", err)
		return nil, backend("database operation failed", err)
	}

	slog.Info("Nomikai saved", "event_name", req.EventName, "participants", len(rows))
	return rows, nil
}

// SearchNomikai returns the rows matching every supplied filter.
func (s *ExpenseService) SearchNomikai(ctx context.Context, req SearchRequest) ([]models.Nomikai, error) {
	slog.Info("SearchNomikai processed a request",
		"event_name", req.EventName,
		"event_date", req.EventDate,
		"name", req.Name,
	)

	if err := s.check(req, "at least one query parameter (eventname, eventdate or name) is required"); err != nil {
		return nil, err
	}

	results, err := s.store.SearchNomikai(ctx, models.NomikaiFilter{
		EventName:   req.EventName,
		EventDate:   req.EventDate,
		Participant: req.Name,
	})
	if err != nil {
		slog.Error("SearchNomikai failed", "error", err)
		return nil, backend("failed to search events", err)
	}
	return results, nil
}

// UpdatePaymentFlags applies each update by row ID. An ID that matches no
// row is logged and skipped; it does not fail the call.
func (s *ExpenseService) UpdatePaymentFlags(ctx context.Context, updates []models.PaymentFlagUpdate) error {
	slog.Info("UpdatePaymentFlags processed a request", "updates", len(updates))

	if len(updates) == 0 {
		return invalidRequest("no updates supplied")
	}

	results, err := s.store.UpdatePaymentFlags(ctx, updates)
	if err != nil {
		slog.Error("UpdatePaymentFlags failed", "error", err)
		return backend("failed to update payment flags", err)
	}

	for _, r := range results {
		if !r.Matched {
			slog.Warn("No record found", "id", r.ID)
		}
	}
	return nil
}

// check runs struct validation and turns a failure into an InvalidRequest
// carrying msg.
func (s *ExpenseService) check(req any, msg string) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			slog.Debug("Validation failed", "field", fe.Field(), "tag", fe.Tag(), "value", fmt.Sprint(fe.Value()))
		}
		return invalidRequest(msg)
	}
	return backend("failed to validate request", err)
}

package financesvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/google/uuid"
)

var (
	ErrBadInput     = errors.New("invalid payload")
	ErrInvalidRange = errors.New("invalid date range")
)

type PaymentInput struct {
	AccountName string
	Amount      float64
	DueDate     string
	Description string
}

type ReceivableInput struct {
	ClientName   string
	DumpsterCode string
	RentalNoteID *string
	Amount       float64
	ReceivedDate string
}

type Repo interface {
	InsertPayment(ctx context.Context, p *model.Payment) error
	ListPayments(ctx context.Context) ([]model.Payment, error)
	InsertReceivable(ctx context.Context, rc *model.Receivable) error
	ListReceivables(ctx context.Context) ([]model.Receivable, error)
}

type RentalRepo interface {
	List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
}

type Service interface {
	CreatePayment(ctx context.Context, in PaymentInput) (*model.Payment, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	CreateReceivable(ctx context.Context, in ReceivableInput) (*model.Receivable, error)
	ListReceivables(ctx context.Context) ([]model.Receivable, error)

	// DetailedReport buckets rentals, receivables and payments by UTC
	// calendar day over an inclusive date range.
	DetailedReport(ctx context.Context, start, end string) (*Report, error)

	// MonthlySummary covers the current UTC month with an open upper
	// bound, so future-dated records are included. That asymmetry with
	// DetailedReport matches how the views have always behaved.
	MonthlySummary(ctx context.Context) (*MonthlySummary, error)
}

type service struct {
	r  Repo
	rr RentalRepo
}

func New(r Repo, rr RentalRepo) Service { return &service{r: r, rr: rr} }

func (s *service) CreatePayment(ctx context.Context, in PaymentInput) (*model.Payment, error) {
	if strings.TrimSpace(in.AccountName) == "" || in.Amount <= 0 || in.DueDate == "" {
		return nil, ErrBadInput
	}
	p := &model.Payment{
		ID:          uuid.NewString(),
		AccountName: in.AccountName,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.r.InsertPayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return s.r.ListPayments(ctx)
}

func (s *service) CreateReceivable(ctx context.Context, in ReceivableInput) (*model.Receivable, error) {
	if strings.TrimSpace(in.ClientName) == "" || in.Amount <= 0 || in.ReceivedDate == "" {
		return nil, ErrBadInput
	}
	rc := &model.Receivable{
		ID:           uuid.NewString(),
		ClientName:   in.ClientName,
		DumpsterCode: in.DumpsterCode,
		RentalNoteID: in.RentalNoteID,
		Amount:       in.Amount,
		ReceivedDate: in.ReceivedDate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.r.InsertReceivable(ctx, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *service) ListReceivables(ctx context.Context) ([]model.Receivable, error) {
	return s.r.ListReceivables(ctx)
}

func (s *service) MonthlySummary(ctx context.Context) (*MonthlySummary, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return s.monthlySummaryFrom(ctx, start)
}

func (s *service) monthlySummaryFrom(ctx context.Context, start time.Time) (*MonthlySummary, error) {
	receivables, err := s.r.ListReceivables(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.r.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	out := &MonthlySummary{
		Month:       start.Format("2006-01"),
		Receivables: []model.Receivable{},
		Payments:    []model.Payment{},
	}
	for _, rc := range receivables {
		if inOpenWindow(rc.ReceivedDate, start) {
			out.Receivables = append(out.Receivables, rc)
			out.TotalReceived += rc.Amount
		}
	}
	for _, p := range payments {
		if inOpenWindow(p.DueDate, start) {
			out.Payments = append(out.Payments, p)
			out.TotalPaid += p.Amount
		}
	}
	out.NetIncome = out.TotalReceived - out.TotalPaid
	return out, nil
}

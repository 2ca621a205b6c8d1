package dashboardsvc

import (
	"context"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	rentalsvc "github.com/EstevanMarcatti/DISKFINAL2/service/rental"
)

// Stats is the cross-sectional dashboard view. Overdue and expired are
// active notes in the purple and yellow tiers respectively.
type Stats struct {
	TotalClients       int64 `json:"total_clients"`
	ActiveDumpsters    int   `json:"active_dumpsters"`
	RetrievedDumpsters int   `json:"retrieved_dumpsters"`
	OverdueDumpsters   int   `json:"overdue_dumpsters"`
	ExpiredDumpsters   int   `json:"expired_dumpsters"`
	TotalPayments      int64 `json:"total_payments"`
}

type ClientRepo interface {
	Count(ctx context.Context) (int64, error)
}

type RentalRepo interface {
	List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
}

type PaymentRepo interface {
	CountPayments(ctx context.Context) (int64, error)
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	cr ClientRepo
	rr RentalRepo
	pr PaymentRepo
}

func New(cr ClientRepo, rr RentalRepo, pr PaymentRepo) Service {
	return &service{cr: cr, rr: rr, pr: pr}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	clients, err := s.cr.Count(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.pr.CountPayments(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.rr.List(ctx, "")
	if err != nil {
		return nil, err
	}

	st := &Stats{TotalClients: clients, TotalPayments: payments}
	now := time.Now().UTC()
	for _, n := range notes {
		switch n.Status {
		case model.RentalRetrieved:
			st.RetrievedDumpsters++
			continue
		default:
			st.ActiveDumpsters++
		}
		switch rentalsvc.StatusColor(n.RentalDate, n.Status, now) {
		case model.ColorPurple:
			st.OverdueDumpsters++
		case model.ColorYellow:
			st.ExpiredDumpsters++
		}
	}
	return st, nil
}

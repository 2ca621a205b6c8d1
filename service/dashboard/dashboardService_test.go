package dashboardsvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	dashboardsvc "github.com/EstevanMarcatti/DISKFINAL2/service/dashboard"
)

type clientRepoMock struct{ n int64 }

func (m *clientRepoMock) Count(ctx context.Context) (int64, error) { return m.n, nil }

type paymentRepoMock struct{ n int64 }

func (m *paymentRepoMock) CountPayments(ctx context.Context) (int64, error) { return m.n, nil }

type rentalRepoMock struct {
	notes []model.RentalNote
}

func (m *rentalRepoMock) List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
	return m.notes, nil
}

func active(age time.Duration) model.RentalNote {
	return model.RentalNote{
		Status:     model.RentalActive,
		RentalDate: time.Now().UTC().Add(-age).Format(time.RFC3339),
	}
}

func TestStats(t *testing.T) {
	day := 24 * time.Hour
	rr := &rentalRepoMock{notes: []model.RentalNote{
		active(1 * day),  // green
		active(15 * day), // yellow -> expired
		active(20 * day), // yellow -> expired
		active(45 * day), // purple -> overdue
		{Status: model.RentalRetrieved, RentalDate: time.Now().UTC().Add(-60 * day).Format(time.RFC3339)},
	}}
	svc := dashboardsvc.New(&clientRepoMock{n: 7}, rr, &paymentRepoMock{n: 4})

	st, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if st.TotalClients != 7 || st.TotalPayments != 4 {
		t.Fatalf("counts wrong: %+v", st)
	}
	if st.ActiveDumpsters != 4 || st.RetrievedDumpsters != 1 {
		t.Fatalf("status split wrong: %+v", st)
	}
	// two-state model: active + retrieved must cover every note
	if st.ActiveDumpsters+st.RetrievedDumpsters != len(rr.notes) {
		t.Fatalf("active+retrieved != total: %+v", st)
	}
	if st.OverdueDumpsters != 1 || st.ExpiredDumpsters != 2 {
		t.Fatalf("tier counts wrong: %+v", st)
	}
}

package financesvc

import (
	"context"
	"testing"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
)

type repoMock struct {
	insertPaymentFn    func(ctx context.Context, p *model.Payment) error
	listPaymentsFn     func(ctx context.Context) ([]model.Payment, error)
	insertReceivableFn func(ctx context.Context, rc *model.Receivable) error
	listReceivablesFn  func(ctx context.Context) ([]model.Receivable, error)
}

func (m *repoMock) InsertPayment(ctx context.Context, p *model.Payment) error {
	if m.insertPaymentFn == nil {
		return nil
	}
	return m.insertPaymentFn(ctx, p)
}
func (m *repoMock) ListPayments(ctx context.Context) ([]model.Payment, error) {
	if m.listPaymentsFn == nil {
		return nil, nil
	}
	return m.listPaymentsFn(ctx)
}
func (m *repoMock) InsertReceivable(ctx context.Context, rc *model.Receivable) error {
	if m.insertReceivableFn == nil {
		return nil
	}
	return m.insertReceivableFn(ctx, rc)
}
func (m *repoMock) ListReceivables(ctx context.Context) ([]model.Receivable, error) {
	if m.listReceivablesFn == nil {
		return nil, nil
	}
	return m.listReceivablesFn(ctx)
}

type rentalRepoMock struct {
	listFn func(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
}

func (m *rentalRepoMock) List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, status)
}

func rentalOn(date string, price float64) model.RentalNote {
	return model.RentalNote{
		ClientName: "c", DumpsterCode: "d", DumpsterSize: model.SizeSmall,
		RentalDate: date, Price: price, Status: model.RentalActive,
	}
}

func TestDetailedReport_Buckets(t *testing.T) {
	ctx := context.Background()
	rr := &rentalRepoMock{
		listFn: func(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
			return []model.RentalNote{
				rentalOn("2025-03-01T09:00:00Z", 100),
				rentalOn("2025-03-01T17:30:00Z", 50),
				rentalOn("2025-03-03T08:00:00Z", 200),
			}, nil
		},
	}
	svc := New(&repoMock{}, rr)

	rep, err := svc.DetailedReport(ctx, "2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if len(rep.Days) != 2 {
		t.Fatalf("got %d buckets, want 2", len(rep.Days))
	}

	d1 := rep.Days[0]
	if d1.Date != "2025-03-01" || d1.RentalCount != 2 || d1.RentalAmount != 150 {
		t.Fatalf("day 1 bucket wrong: %+v", d1)
	}
	d3 := rep.Days[1]
	if d3.Date != "2025-03-03" || d3.RentalCount != 1 || d3.RentalAmount != 200 {
		t.Fatalf("day 3 bucket wrong: %+v", d3)
	}
	if rep.Totals.RentalAmount != 350 || rep.Totals.RentalCount != 3 {
		t.Fatalf("totals wrong: %+v", rep.Totals)
	}

	// chart series aligned with bucket order
	if len(rep.Chart.Dates) != 2 || rep.Chart.Dates[0] != "2025-03-01" || rep.Chart.Dates[1] != "2025-03-03" {
		t.Fatalf("chart dates wrong: %v", rep.Chart.Dates)
	}
	if rep.Chart.RentalCounts[0] != 2 || rep.Chart.RentalCounts[1] != 1 {
		t.Fatalf("chart counts wrong: %v", rep.Chart.RentalCounts)
	}
}

func TestDetailedReport_InclusiveBounds(t *testing.T) {
	ctx := context.Background()
	r := &repoMock{
		listReceivablesFn: func(ctx context.Context) ([]model.Receivable, error) {
			return []model.Receivable{
				{ClientName: "before", Amount: 1, ReceivedDate: "2025-02-28T23:59:59Z"},
				{ClientName: "on start", Amount: 2, ReceivedDate: "2025-03-01T00:00:00Z"},
				{ClientName: "on end", Amount: 4, ReceivedDate: "2025-03-10T23:59:00Z"},
				{ClientName: "after", Amount: 8, ReceivedDate: "2025-03-11T00:00:00Z"},
			}, nil
		},
	}
	svc := New(r, &rentalRepoMock{})

	rep, err := svc.DetailedReport(ctx, "2025-03-01", "2025-03-10")
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if rep.Totals.ReceivableCount != 2 || rep.Totals.ReceivableAmount != 6 {
		t.Fatalf("inclusive bounds violated: %+v", rep.Totals)
	}
}

func TestDetailedReport_NetIncomeAndMalformedDates(t *testing.T) {
	ctx := context.Background()
	r := &repoMock{
		listReceivablesFn: func(ctx context.Context) ([]model.Receivable, error) {
			return []model.Receivable{
				{ClientName: "ok", Amount: 500, ReceivedDate: "2025-03-05T10:00:00Z"},
				{ClientName: "broken", Amount: 999, ReceivedDate: "05/03/2025"},
			}, nil
		},
		listPaymentsFn: func(ctx context.Context) ([]model.Payment, error) {
			return []model.Payment{
				{AccountName: "fuel", Amount: 120, DueDate: "2025-03-07"},
				{AccountName: "broken", Amount: 999, DueDate: "not a date"},
			}, nil
		},
	}
	svc := New(r, &rentalRepoMock{})

	rep, err := svc.DetailedReport(ctx, "2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("malformed dates must not abort the report: %v", err)
	}
	if rep.Totals.ReceivableAmount != 500 || rep.Totals.PaymentAmount != 120 {
		t.Fatalf("malformed rows not skipped: %+v", rep.Totals)
	}
	if rep.Totals.NetIncome != 380 {
		t.Fatalf("net income = %v, want 380", rep.Totals.NetIncome)
	}
}

func TestDetailedReport_InvalidRange(t *testing.T) {
	ctx := context.Background()
	svc := New(&repoMock{}, &rentalRepoMock{})

	if _, err := svc.DetailedReport(ctx, "yesterday", "2025-03-31"); err != ErrInvalidRange {
		t.Fatalf("got %v, want ErrInvalidRange", err)
	}
	if _, err := svc.DetailedReport(ctx, "2025-03-31", "2025-03-01"); err != ErrInvalidRange {
		t.Fatalf("inverted range: got %v, want ErrInvalidRange", err)
	}
}

func TestMonthlySummary_OpenUpperBound(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	r := &repoMock{
		listReceivablesFn: func(ctx context.Context) ([]model.Receivable, error) {
			return []model.Receivable{
				{ClientName: "last month", Amount: 100, ReceivedDate: "2025-02-27T12:00:00Z"},
				{ClientName: "this month", Amount: 300, ReceivedDate: "2025-03-10T12:00:00Z"},
				// Future-dated records are included on purpose.
				{ClientName: "future", Amount: 50, ReceivedDate: "2025-06-01T00:00:00Z"},
			}, nil
		},
		listPaymentsFn: func(ctx context.Context) ([]model.Payment, error) {
			return []model.Payment{
				{AccountName: "old", Amount: 80, DueDate: "2025-01-15"},
				{AccountName: "rent", Amount: 200, DueDate: "2025-03-05"},
			}, nil
		},
	}
	svc := New(r, &rentalRepoMock{}).(*service)

	sum, err := svc.monthlySummaryFrom(ctx, start)
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if sum.Month != "2025-03" {
		t.Fatalf("month label = %q, want 2025-03", sum.Month)
	}
	if sum.TotalReceived != 350 {
		t.Fatalf("total received = %v, want 350", sum.TotalReceived)
	}
	if sum.TotalPaid != 200 {
		t.Fatalf("total paid = %v, want 200", sum.TotalPaid)
	}
	if sum.NetIncome != 150 {
		t.Fatalf("net income = %v, want 150", sum.NetIncome)
	}
	if len(sum.Receivables) != 2 || len(sum.Payments) != 1 {
		t.Fatalf("record lists wrong: %d receivables, %d payments", len(sum.Receivables), len(sum.Payments))
	}
}

func TestCreatePayment_Validation(t *testing.T) {
	ctx := context.Background()
	svc := New(&repoMock{}, &rentalRepoMock{})

	if _, err := svc.CreatePayment(ctx, PaymentInput{AccountName: "", Amount: 10, DueDate: "2025-03-01"}); err != ErrBadInput {
		t.Fatal("expected error for empty account name")
	}
	if _, err := svc.CreatePayment(ctx, PaymentInput{AccountName: "fuel", Amount: 0, DueDate: "2025-03-01"}); err != ErrBadInput {
		t.Fatal("expected error for zero amount")
	}

	p, err := svc.CreatePayment(ctx, PaymentInput{AccountName: "fuel", Amount: 10, DueDate: "2025-03-01"})
	if err != nil || p.ID == "" {
		t.Fatalf("got %+v err=%v; want payment with id", p, err)
	}
}

func TestCreateReceivable_Validation(t *testing.T) {
	ctx := context.Background()
	svc := New(&repoMock{}, &rentalRepoMock{})

	if _, err := svc.CreateReceivable(ctx, ReceivableInput{ClientName: " ", Amount: 10, ReceivedDate: "2025-03-01"}); err != ErrBadInput {
		t.Fatal("expected error for empty client name")
	}

	rc, err := svc.CreateReceivable(ctx, ReceivableInput{ClientName: "Acme", Amount: 10, ReceivedDate: "2025-03-01"})
	if err != nil || rc.ID == "" {
		t.Fatalf("got %+v err=%v; want receivable with id", rc, err)
	}
}

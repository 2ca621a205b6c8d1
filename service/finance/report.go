package financesvc

import (
	"context"
	"sort"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	"github.com/EstevanMarcatti/DISKFINAL2/util/dates"
)

type RentalItem struct {
	Client string             `json:"client"`
	Code   string             `json:"code"`
	Size   model.DumpsterSize `json:"size"`
	Amount float64            `json:"amount"`
}

type ReceivableItem struct {
	Client string  `json:"client"`
	Code   string  `json:"code,omitempty"`
	Amount float64 `json:"amount"`
}

type PaymentItem struct {
	Account     string  `json:"account"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
}

type DayBucket struct {
	Date             string           `json:"date"`
	RentalCount      int              `json:"rental_count"`
	RentalAmount     float64          `json:"rental_amount"`
	Rentals          []RentalItem     `json:"rentals"`
	ReceivableCount  int              `json:"receivable_count"`
	ReceivableAmount float64          `json:"receivable_amount"`
	Receivables      []ReceivableItem `json:"receivables"`
	PaymentCount     int              `json:"payment_count"`
	PaymentAmount    float64          `json:"payment_amount"`
	Payments         []PaymentItem    `json:"payments"`
}

type Totals struct {
	RentalCount      int     `json:"rental_count"`
	RentalAmount     float64 `json:"rental_amount"`
	ReceivableCount  int     `json:"receivable_count"`
	ReceivableAmount float64 `json:"receivable_amount"`
	PaymentCount     int     `json:"payment_count"`
	PaymentAmount    float64 `json:"payment_amount"`
	NetIncome        float64 `json:"net_income"`
}

// ChartSeries is the per-day data the frontend charts plot; all slices
// share the index order of Dates.
type ChartSeries struct {
	Dates             []string  `json:"dates"`
	RentalCounts      []int     `json:"rental_counts"`
	ReceivableAmounts []float64 `json:"receivable_amounts"`
	PaymentAmounts    []float64 `json:"payment_amounts"`
}

type Report struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Days      []DayBucket `json:"daily_breakdown"`
	Totals    Totals      `json:"totals"`
	Chart     ChartSeries `json:"chart"`
}

type MonthlySummary struct {
	Month         string             `json:"month"`
	TotalReceived float64            `json:"total_received"`
	TotalPaid     float64            `json:"total_paid"`
	NetIncome     float64            `json:"net_income"`
	Receivables   []model.Receivable `json:"receivables"`
	Payments      []model.Payment    `json:"payments"`
}

func (s *service) DetailedReport(ctx context.Context, start, end string) (*Report, error) {
	startDay, err1 := time.ParseInLocation("2006-01-02", start, time.UTC)
	endDay, err2 := time.ParseInLocation("2006-01-02", end, time.UTC)
	if err1 != nil || err2 != nil || endDay.Before(startDay) {
		return nil, ErrInvalidRange
	}

	rentals, err := s.rr.List(ctx, "")
	if err != nil {
		return nil, err
	}
	receivables, err := s.r.ListReceivables(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.r.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*DayBucket{}
	bucket := func(day string) *DayBucket {
		b, ok := buckets[day]
		if !ok {
			b = &DayBucket{
				Date:        day,
				Rentals:     []RentalItem{},
				Receivables: []ReceivableItem{},
				Payments:    []PaymentItem{},
			}
			buckets[day] = b
		}
		return b
	}

	// Malformed stored dates drop only their own record; the report
	// itself always completes.
	for _, n := range rentals {
		day, ok := dayInRange(n.RentalDate, start, end)
		if !ok {
			continue
		}
		b := bucket(day)
		b.RentalCount++
		b.RentalAmount += n.Price
		b.Rentals = append(b.Rentals, RentalItem{
			Client: n.ClientName, Code: n.DumpsterCode, Size: n.DumpsterSize, Amount: n.Price,
		})
	}
	for _, rc := range receivables {
		day, ok := dayInRange(rc.ReceivedDate, start, end)
		if !ok {
			continue
		}
		b := bucket(day)
		b.ReceivableCount++
		b.ReceivableAmount += rc.Amount
		b.Receivables = append(b.Receivables, ReceivableItem{
			Client: rc.ClientName, Code: rc.DumpsterCode, Amount: rc.Amount,
		})
	}
	for _, p := range payments {
		day, ok := dayInRange(p.DueDate, start, end)
		if !ok {
			continue
		}
		b := bucket(day)
		b.PaymentCount++
		b.PaymentAmount += p.Amount
		b.Payments = append(b.Payments, PaymentItem{
			Account: p.AccountName, Description: p.Description, Amount: p.Amount,
		})
	}

	days := make([]string, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Strings(days)

	rep := &Report{StartDate: start, EndDate: end, Days: []DayBucket{}}
	for _, d := range days {
		b := buckets[d]
		rep.Days = append(rep.Days, *b)
		rep.Totals.RentalCount += b.RentalCount
		rep.Totals.RentalAmount += b.RentalAmount
		rep.Totals.ReceivableCount += b.ReceivableCount
		rep.Totals.ReceivableAmount += b.ReceivableAmount
		rep.Totals.PaymentCount += b.PaymentCount
		rep.Totals.PaymentAmount += b.PaymentAmount

		rep.Chart.Dates = append(rep.Chart.Dates, b.Date)
		rep.Chart.RentalCounts = append(rep.Chart.RentalCounts, b.RentalCount)
		rep.Chart.ReceivableAmounts = append(rep.Chart.ReceivableAmounts, b.ReceivableAmount)
		rep.Chart.PaymentAmounts = append(rep.Chart.PaymentAmounts, b.PaymentAmount)
	}
	rep.Totals.NetIncome = rep.Totals.ReceivableAmount - rep.Totals.PaymentAmount
	return rep, nil
}

// dayInRange parses a stored date and checks start <= day <= end,
// comparing day keys so both range ends are inclusive.
func dayInRange(raw, start, end string) (string, bool) {
	t, ok := dates.Parse(raw)
	if !ok {
		return "", false
	}
	day := dates.DayKey(t)
	if day < start || day > end {
		return "", false
	}
	return day, true
}

// inOpenWindow checks date >= start with no upper bound.
func inOpenWindow(raw string, start time.Time) bool {
	t, ok := dates.Parse(raw)
	if !ok {
		return false
	}
	return !t.Before(start)
}

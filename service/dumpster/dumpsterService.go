package dumpstersvc

import (
	"context"
	"errors"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	dumpsterrepo "github.com/EstevanMarcatti/DISKFINAL2/repository/dumpster"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("dumpster type not found")

type Repo interface {
	Insert(ctx context.Context, t *model.DumpsterType) error
	List(ctx context.Context) ([]model.DumpsterType, error)
	UpdatePrice(ctx context.Context, size model.DumpsterSize, price float64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type Service interface {
	List(ctx context.Context) ([]model.DumpsterType, error)
	UpdatePrice(ctx context.Context, size model.DumpsterSize, price float64) error

	// EnsureDefaults seeds the three size tiers once, before serving
	// traffic. A non-empty table means an operator already adjusted
	// prices, so nothing is written.
	EnsureDefaults(ctx context.Context) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.DumpsterType, error) {
	return s.r.List(ctx)
}

func (s *service) UpdatePrice(ctx context.Context, size model.DumpsterSize, price float64) error {
	ok, err := s.r.UpdatePrice(ctx, size, price)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

var defaults = []model.DumpsterType{
	{Size: model.SizeSmall, Volume: "1m³", Price: 150},
	{Size: model.SizeMedium, Volume: "2.5m³", Price: 250},
	{Size: model.SizeLarge, Volume: "5m³", Price: 350},
}

func (s *service) EnsureDefaults(ctx context.Context) error {
	n, err := s.r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, d := range defaults {
		d.ID = uuid.NewString()
		d.CreatedAt = time.Now().UTC()
		if err := s.r.Insert(ctx, &d); err != nil {
			// Two instances booting at once both see an empty table;
			// the loser of the insert race just moves on.
			if errors.Is(err, dumpsterrepo.ErrDuplicateSize) {
				continue
			}
			return err
		}
	}
	return nil
}

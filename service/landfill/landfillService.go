package landfillsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/google/uuid"
)

var ErrBadInput = errors.New("invalid payload")

type Input struct {
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

type Repo interface {
	Insert(ctx context.Context, l *model.Landfill) error
	List(ctx context.Context) ([]model.Landfill, error)
}

type Service interface {
	Create(ctx context.Context, in Input) (*model.Landfill, error)
	List(ctx context.Context) ([]model.Landfill, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, in Input) (*model.Landfill, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, ErrBadInput
	}
	l := &model.Landfill{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.r.Insert(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) List(ctx context.Context) ([]model.Landfill, error) {
	return s.r.List(ctx)
}

package clientsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("client not found")
	ErrBadInput = errors.New("invalid payload")
)

type Input struct {
	Name             string
	Address          string
	Phone            string
	Email            string
	TaxID            string
	SecondaryAddress string
	Notes            string
}

// Stats counts a client's rentals by payment state.
type Stats struct {
	TotalDumpsters int `json:"total_dumpsters"`
	PaidDumpsters  int `json:"paid_dumpsters"`
	OpenDumpsters  int `json:"open_dumpsters"`
}

type Repo interface {
	Create(ctx context.Context, c *model.Client) error
	List(ctx context.Context) ([]model.Client, error)
	ByID(ctx context.Context, id string) (*model.Client, error)
	Update(ctx context.Context, c *model.Client) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RentalRepo interface {
	ListByClient(ctx context.Context, clientID string) ([]model.RentalNote, error)
}

type Service interface {
	Create(ctx context.Context, in Input) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id string) (*model.Client, error)
	Update(ctx context.Context, id string, in Input) (*model.Client, error)

	// Delete removes only the client record. Existing rental notes keep
	// their denormalized snapshot and stay untouched.
	Delete(ctx context.Context, id string) error

	Stats(ctx context.Context, clientID string) (*Stats, error)
}

type service struct {
	r  Repo
	rr RentalRepo
}

func New(r Repo, rr RentalRepo) Service { return &service{r: r, rr: rr} }

func (s *service) Create(ctx context.Context, in Input) (*model.Client, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, ErrBadInput
	}
	c := &model.Client{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		TaxID:            in.TaxID,
		SecondaryAddress: in.SecondaryAddress,
		Notes:            in.Notes,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]model.Client, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*model.Client, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, in Input) (*model.Client, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, ErrBadInput
	}
	c := &model.Client{
		ID:               id,
		Name:             in.Name,
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		TaxID:            in.TaxID,
		SecondaryAddress: in.SecondaryAddress,
		Notes:            in.Notes,
	}
	ok, err := s.r.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Stats scans the client's notes only; an unknown id simply yields zeros,
// which is what the dashboard expects for clients deleted after renting.
func (s *service) Stats(ctx context.Context, clientID string) (*Stats, error) {
	notes, err := s.rr.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	st := &Stats{TotalDumpsters: len(notes)}
	for _, n := range notes {
		if n.IsPaid {
			st.PaidDumpsters++
		}
	}
	st.OpenDumpsters = st.TotalDumpsters - st.PaidDumpsters
	return st, nil
}

package clientsvc_test

import (
	"context"
	"testing"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	clientsvc "github.com/EstevanMarcatti/DISKFINAL2/service/client"
)

type repoMock struct {
	createFn func(ctx context.Context, c *model.Client) error
	listFn   func(ctx context.Context) ([]model.Client, error)
	byIDFn   func(ctx context.Context, id string) (*model.Client, error)
	updateFn func(ctx context.Context, c *model.Client) (bool, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
}

func (m *repoMock) Create(ctx context.Context, c *model.Client) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}
func (m *repoMock) List(ctx context.Context) ([]model.Client, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}
func (m *repoMock) ByID(ctx context.Context, id string) (*model.Client, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, c *model.Client) (bool, error) {
	if m.updateFn == nil {
		return true, nil
	}
	return m.updateFn(ctx, c)
}
func (m *repoMock) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFn == nil {
		return true, nil
	}
	return m.deleteFn(ctx, id)
}

type rentalRepoMock struct {
	listByClientFn func(ctx context.Context, clientID string) ([]model.RentalNote, error)
}

func (m *rentalRepoMock) ListByClient(ctx context.Context, clientID string) ([]model.RentalNote, error) {
	if m.listByClientFn == nil {
		return nil, nil
	}
	return m.listByClientFn(ctx, clientID)
}

func TestCreate_Validation(t *testing.T) {
	s := clientsvc.New(&repoMock{}, &rentalRepoMock{})
	if _, err := s.Create(context.Background(), clientsvc.Input{Name: "", Address: "x"}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := s.Create(context.Background(), clientsvc.Input{Name: "x", Address: " "}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestCreate_Success(t *testing.T) {
	var stored *model.Client
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Client) error {
			stored = c
			return nil
		},
	}
	s := clientsvc.New(m, &rentalRepoMock{})

	c, err := s.Create(context.Background(), clientsvc.Input{Name: "Acme", Address: "Main St 1", Phone: "555"})
	if err != nil || c.ID == "" {
		t.Fatalf("got %+v err=%v; want client with id", c, err)
	}
	if stored == nil || stored.Name != "Acme" {
		t.Fatalf("stored = %+v", stored)
	}
	if c.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

func TestGetUpdateDelete_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id string) (*model.Client, error) { return nil, nil },
		updateFn: func(ctx context.Context, c *model.Client) (bool, error) { return false, nil },
		deleteFn: func(ctx context.Context, id string) (bool, error) { return false, nil },
	}
	s := clientsvc.New(m, &rentalRepoMock{})

	if _, err := s.Get(context.Background(), "missing"); err != clientsvc.ErrNotFound {
		t.Fatalf("Get: got %v, want ErrNotFound", err)
	}
	if _, err := s.Update(context.Background(), "missing", clientsvc.Input{Name: "a", Address: "b"}); err != clientsvc.ErrNotFound {
		t.Fatalf("Update: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(context.Background(), "missing"); err != clientsvc.ErrNotFound {
		t.Fatalf("Delete: got %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	m := &rentalRepoMock{
		listByClientFn: func(ctx context.Context, clientID string) ([]model.RentalNote, error) {
			return []model.RentalNote{
				{IsPaid: true},
				{IsPaid: false},
				{IsPaid: false},
			}, nil
		},
	}
	s := clientsvc.New(&repoMock{}, m)

	st, err := s.Stats(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if st.TotalDumpsters != 3 || st.PaidDumpsters != 1 || st.OpenDumpsters != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestStats_UnknownClientIsZeros(t *testing.T) {
	s := clientsvc.New(&repoMock{}, &rentalRepoMock{})

	st, err := s.Stats(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if st.TotalDumpsters != 0 || st.PaidDumpsters != 0 || st.OpenDumpsters != 0 {
		t.Fatalf("stats = %+v, want zeros", st)
	}
}

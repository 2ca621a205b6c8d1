package rentalsvc

import (
	"context"
	"testing"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	geocoderepo "github.com/EstevanMarcatti/DISKFINAL2/repository/geocode"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	insertFn    func(ctx context.Context, n *model.RentalNote) error
	listFn      func(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
	byIDFn      func(ctx context.Context, id string) (*model.RentalNote, error)
	setStatusFn func(ctx context.Context, id string, status model.RentalStatus) (bool, error)
	setPaidFn   func(ctx context.Context, id string) (bool, error)
	setCoordsFn func(ctx context.Context, id string, lat, lon float64) (bool, error)
	deleteFn    func(ctx context.Context, id string) (bool, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Insert(ctx context.Context, n *model.RentalNote) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, n)
}
func (m *repoMock) List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, status)
}
func (m *repoMock) ByID(ctx context.Context, id string) (*model.RentalNote, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *repoMock) SetStatus(ctx context.Context, id string, status model.RentalStatus) (bool, error) {
	if m.setStatusFn == nil {
		return true, nil
	}
	return m.setStatusFn(ctx, id, status)
}
func (m *repoMock) SetPaid(ctx context.Context, id string) (bool, error) {
	if m.setPaidFn == nil {
		return true, nil
	}
	return m.setPaidFn(ctx, id)
}
func (m *repoMock) SetCoordinates(ctx context.Context, id string, lat, lon float64) (bool, error) {
	if m.setCoordsFn == nil {
		return true, nil
	}
	return m.setCoordsFn(ctx, id, lat, lon)
}
func (m *repoMock) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFn == nil {
		return true, nil
	}
	return m.deleteFn(ctx, id)
}

type clientRepoMock struct {
	byIDFn func(ctx context.Context, id string) (*model.Client, error)
}

func (m *clientRepoMock) ByID(ctx context.Context, id string) (*model.Client, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

type receivableRepoMock struct {
	insertFn func(ctx context.Context, rc *model.Receivable) error
}

func (m *receivableRepoMock) InsertReceivable(ctx context.Context, rc *model.Receivable) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, rc)
}

type geocoderMock struct {
	searchFn func(ctx context.Context, address string) (*geocoderepo.Result, error)
}

func (m *geocoderMock) Search(ctx context.Context, address string) (*geocoderepo.Result, error) {
	if m.searchFn == nil {
		return nil, geocoderepo.ErrNoMatch
	}
	return m.searchFn(ctx, address)
}

func newService(r *repoMock, cr *clientRepoMock, fr *receivableRepoMock, g *geocoderMock) Service {
	if r == nil {
		r = &repoMock{}
	}
	if cr == nil {
		cr = &clientRepoMock{}
	}
	if fr == nil {
		fr = &receivableRepoMock{}
	}
	if g == nil {
		g = &geocoderMock{}
	}
	return New(r, cr, fr, g)
}

// --- create / resolver ---

func TestCreate_RegisteredClientSnapshot(t *testing.T) {
	ctx := context.Background()
	clientID := "c-1"

	var stored *model.RentalNote
	r := &repoMock{
		insertFn: func(ctx context.Context, n *model.RentalNote) error {
			stored = n
			return nil
		},
	}
	cr := &clientRepoMock{
		byIDFn: func(ctx context.Context, id string) (*model.Client, error) {
			require.Equal(t, clientID, id)
			return &model.Client{ID: id, Name: "Acme Ltd", Address: "Main St 1", Phone: "555-0101"}, nil
		},
	}
	svc := newService(r, cr, nil, nil)

	n, err := svc.Create(ctx, CreateInput{
		ClientID:     &clientID,
		ClientName:   "ignored",
		DumpsterCode: "D-07",
		DumpsterSize: model.SizeMedium,
		RentalDate:   "2025-03-01T08:00:00Z",
		Price:        250,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEmpty(t, n.ID)
	require.Equal(t, &clientID, n.ClientID)
	require.Equal(t, "Acme Ltd", n.ClientName)
	require.Equal(t, "Main St 1", n.ClientAddress)
	require.Equal(t, "555-0101", n.ClientPhone)
	require.Equal(t, model.RentalActive, n.Status)
	require.False(t, n.IsPaid)
	require.Equal(t, 250.0, n.Price)
}

func TestCreate_RegisteredClientNotFound(t *testing.T) {
	ctx := context.Background()
	clientID := "missing"
	cr := &clientRepoMock{
		byIDFn: func(ctx context.Context, id string) (*model.Client, error) { return nil, nil },
	}
	svc := newService(nil, cr, nil, nil)

	_, err := svc.Create(ctx, CreateInput{ClientID: &clientID, DumpsterCode: "D-1"})
	require.Error(t, err)
	require.Equal(t, ErrClientNotFound, Code(err))
}

func TestCreate_UnregisteredClientValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil, nil, nil, nil)

	_, err := svc.Create(ctx, CreateInput{ClientName: "Joe", ClientAddress: "   "})
	require.Error(t, err)
	require.Equal(t, ErrValidation, Code(err))

	_, err = svc.Create(ctx, CreateInput{ClientAddress: "Somewhere 2"})
	require.Error(t, err)
	require.Equal(t, ErrValidation, Code(err))
}

func TestCreate_UnregisteredClientOK(t *testing.T) {
	ctx := context.Background()
	var stored *model.RentalNote
	r := &repoMock{
		insertFn: func(ctx context.Context, n *model.RentalNote) error {
			stored = n
			return nil
		},
	}
	svc := newService(r, nil, nil, nil)

	n, err := svc.Create(ctx, CreateInput{
		ClientName:    "Walk-in",
		ClientAddress: "Back Alley 3",
		DumpsterCode:  "TMP-1",
		DumpsterSize:  model.SizeLarge,
		Price:         350,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Nil(t, n.ClientID)
	require.Equal(t, "Walk-in", n.ClientName)
	require.Equal(t, "", n.ClientPhone)
}

// --- lifecycle ---

func TestRetrieve(t *testing.T) {
	ctx := context.Background()

	r := &repoMock{
		setStatusFn: func(ctx context.Context, id string, status model.RentalStatus) (bool, error) {
			require.Equal(t, model.RentalRetrieved, status)
			return id == "known", nil
		},
	}
	svc := newService(r, nil, nil, nil)

	require.NoError(t, svc.Retrieve(ctx, "known"))

	err := svc.Retrieve(ctx, "unknown")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestMarkPaid_NotFound(t *testing.T) {
	ctx := context.Background()
	inserted := 0
	r := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.RentalNote, error) { return nil, nil },
	}
	fr := &receivableRepoMock{
		insertFn: func(ctx context.Context, rc *model.Receivable) error {
			inserted++
			return nil
		},
	}
	svc := newService(r, nil, fr, nil)

	err := svc.MarkPaid(ctx, "ghost")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
	require.Zero(t, inserted)
}

func TestMarkPaid_CreatesReceivable(t *testing.T) {
	ctx := context.Background()
	note := &model.RentalNote{
		ID:           "rn-9",
		ClientName:   "Acme Ltd",
		DumpsterCode: "D-07",
		Price:        250,
		Status:       model.RentalActive,
	}

	paid := false
	var got *model.Receivable
	r := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.RentalNote, error) { return note, nil },
		setPaidFn: func(ctx context.Context, id string) (bool, error) {
			paid = true
			return true, nil
		},
	}
	fr := &receivableRepoMock{
		insertFn: func(ctx context.Context, rc *model.Receivable) error {
			got = rc
			return nil
		},
	}
	svc := newService(r, nil, fr, nil)

	require.NoError(t, svc.MarkPaid(ctx, "rn-9"))
	require.True(t, paid)
	require.NotNil(t, got)
	require.Equal(t, 250.0, got.Amount)
	require.Equal(t, "Acme Ltd", got.ClientName)
	require.Equal(t, "D-07", got.DumpsterCode)
	require.NotNil(t, got.RentalNoteID)
	require.Equal(t, "rn-9", *got.RentalNoteID)
	_, ok := parseRFC3339(got.ReceivedDate)
	require.True(t, ok, "received date must be RFC3339: %q", got.ReceivedDate)
}

func parseRFC3339(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// No idempotency guard: paying twice books two receivables.
func TestMarkPaid_RepeatBooksAnotherReceivable(t *testing.T) {
	ctx := context.Background()
	note := &model.RentalNote{ID: "rn-1", ClientName: "X", Price: 100, IsPaid: true}

	inserted := 0
	r := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.RentalNote, error) { return note, nil },
	}
	fr := &receivableRepoMock{
		insertFn: func(ctx context.Context, rc *model.Receivable) error {
			inserted++
			return nil
		},
	}
	svc := newService(r, nil, fr, nil)

	require.NoError(t, svc.MarkPaid(ctx, "rn-1"))
	require.NoError(t, svc.MarkPaid(ctx, "rn-1"))
	require.Equal(t, 2, inserted)
}

// --- tier views ---

func TestOverdueAndExpiredViews(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mk := func(id string, age time.Duration) model.RentalNote {
		return model.RentalNote{
			ID:         id,
			Status:     model.RentalActive,
			RentalDate: now.Add(-age).Format(time.RFC3339),
		}
	}
	r := &repoMock{
		listFn: func(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
			require.Equal(t, model.RentalActive, status)
			return []model.RentalNote{
				mk("fresh", 2*24*time.Hour),
				mk("aging", 15*24*time.Hour),
				mk("stale", 45*24*time.Hour),
			}, nil
		},
	}
	svc := newService(r, nil, nil, nil)

	overdue, err := svc.Overdue(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, "stale", overdue[0].ID)
	require.Equal(t, model.ColorPurple, overdue[0].ColorStatus)

	expired, err := svc.Expired(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, "aging", expired[0].ID)
	require.Equal(t, model.ColorYellow, expired[0].ColorStatus)
}

// --- coordinates ---

func TestUpdateCoordinates_NotFound(t *testing.T) {
	ctx := context.Background()
	r := &repoMock{
		setCoordsFn: func(ctx context.Context, id string, lat, lon float64) (bool, error) {
			return false, nil
		},
	}
	svc := newService(r, nil, nil, nil)

	err := svc.UpdateCoordinates(ctx, "nope", -23.5, -46.6)
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestGeocode(t *testing.T) {
	ctx := context.Background()
	note := &model.RentalNote{ID: "rn-2", ClientAddress: "Main St 1"}

	var savedLat, savedLon float64
	r := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.RentalNote, error) { return note, nil },
		setCoordsFn: func(ctx context.Context, id string, lat, lon float64) (bool, error) {
			savedLat, savedLon = lat, lon
			return true, nil
		},
	}
	g := &geocoderMock{
		searchFn: func(ctx context.Context, address string) (*geocoderepo.Result, error) {
			require.Equal(t, "Main St 1", address)
			return &geocoderepo.Result{Latitude: -23.55, Longitude: -46.63}, nil
		},
	}
	svc := newService(r, nil, nil, g)

	out, err := svc.Geocode(ctx, "rn-2")
	require.NoError(t, err)
	require.Equal(t, -23.55, savedLat)
	require.Equal(t, -46.63, savedLon)
	require.NotNil(t, out.Latitude)
	require.Equal(t, -23.55, *out.Latitude)
}

func TestGeocode_NoAddress(t *testing.T) {
	ctx := context.Background()
	r := &repoMock{
		byIDFn: func(ctx context.Context, id string) (*model.RentalNote, error) {
			return &model.RentalNote{ID: id, ClientAddress: " "}, nil
		},
	}
	svc := newService(r, nil, nil, nil)

	_, err := svc.Geocode(ctx, "rn-3")
	require.Error(t, err)
	require.Equal(t, ErrNoAddress, Code(err))
}

package rentalsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	geocoderepo "github.com/EstevanMarcatti/DISKFINAL2/repository/geocode"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrClientNotFound ErrCode = "CLIENT_NOT_FOUND"
	ErrValidation     ErrCode = "VALIDATION"
	ErrNoAddress      ErrCode = "NO_ADDRESS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// CreateInput is the semantic create request. ClientID nil means an
// unregistered client; name and address must then be supplied directly.
type CreateInput struct {
	ClientID      *string
	ClientName    string
	ClientAddress string
	ClientPhone   string
	DumpsterCode  string
	DumpsterSize  model.DumpsterSize
	RentalDate    string
	Description   string
	Price         float64
	Latitude      *float64
	Longitude     *float64
}

type Repo interface {
	Insert(ctx context.Context, n *model.RentalNote) error
	List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
	ByID(ctx context.Context, id string) (*model.RentalNote, error)
	SetStatus(ctx context.Context, id string, status model.RentalStatus) (bool, error)
	SetPaid(ctx context.Context, id string) (bool, error)
	SetCoordinates(ctx context.Context, id string, lat, lon float64) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ClientRepo interface {
	ByID(ctx context.Context, id string) (*model.Client, error)
}

type ReceivableRepo interface {
	InsertReceivable(ctx context.Context, rc *model.Receivable) error
}

type Service interface {
	// Create resolves the client (registered or ad-hoc) and stores the note
	// with a snapshot of the client's name, address and phone.
	Create(ctx context.Context, in CreateInput) (*model.RentalNote, error)

	List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error)
	ListWithColor(ctx context.Context) ([]model.RentalNoteWithColor, error)
	Active(ctx context.Context) ([]model.RentalNoteWithColor, error)
	Retrieved(ctx context.Context) ([]model.RentalNoteWithColor, error)
	Overdue(ctx context.Context) ([]model.RentalNoteWithColor, error)
	Expired(ctx context.Context) ([]model.RentalNoteWithColor, error)

	// Retrieve marks the dumpster as picked up. Repeating the call on an
	// already retrieved note is not an error.
	Retrieve(ctx context.Context, id string) error

	// MarkPaid flips the payment flag and records a receivable for the
	// note's price. There is deliberately no already-paid guard: calling it
	// twice books two receivables, matching how the business has always
	// corrected duplicate charges by hand.
	MarkPaid(ctx context.Context, id string) error

	UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error
	Geocode(ctx context.Context, id string) (*model.RentalNote, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	r  Repo
	cr ClientRepo
	fr ReceivableRepo
	g  geocoderepo.Repo
}

func New(r Repo, cr ClientRepo, fr ReceivableRepo, g geocoderepo.Repo) Service {
	return &service{r: r, cr: cr, fr: fr, g: g}
}

func (s *service) Create(ctx context.Context, in CreateInput) (*model.RentalNote, error) {
	name := strings.TrimSpace(in.ClientName)
	address := strings.TrimSpace(in.ClientAddress)
	phone := strings.TrimSpace(in.ClientPhone)

	if in.ClientID != nil {
		c, err := s.cr.ByID(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, makeErr(ErrClientNotFound)
		}
		name, address, phone = c.Name, c.Address, c.Phone
	} else if name == "" || address == "" {
		return nil, makeErr(ErrValidation)
	}

	n := &model.RentalNote{
		ID:            uuid.NewString(),
		ClientID:      in.ClientID,
		ClientName:    name,
		ClientAddress: address,
		ClientPhone:   phone,
		DumpsterCode:  in.DumpsterCode,
		DumpsterSize:  in.DumpsterSize,
		RentalDate:    in.RentalDate,
		Description:   in.Description,
		Status:        model.RentalActive,
		IsPaid:        false,
		Price:         in.Price,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.r.Insert(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context, status model.RentalStatus) ([]model.RentalNote, error) {
	return s.r.List(ctx, status)
}

func (s *service) ListWithColor(ctx context.Context) ([]model.RentalNoteWithColor, error) {
	notes, err := s.r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return withColors(notes), nil
}

func (s *service) Active(ctx context.Context) ([]model.RentalNoteWithColor, error) {
	notes, err := s.r.List(ctx, model.RentalActive)
	if err != nil {
		return nil, err
	}
	return withColors(notes), nil
}

func (s *service) Retrieved(ctx context.Context) ([]model.RentalNoteWithColor, error) {
	notes, err := s.r.List(ctx, model.RentalRetrieved)
	if err != nil {
		return nil, err
	}
	return withColors(notes), nil
}

func (s *service) Overdue(ctx context.Context) ([]model.RentalNoteWithColor, error) {
	return s.activeByColor(ctx, model.ColorPurple)
}

func (s *service) Expired(ctx context.Context) ([]model.RentalNoteWithColor, error) {
	return s.activeByColor(ctx, model.ColorYellow)
}

func (s *service) activeByColor(ctx context.Context, want model.StatusColor) ([]model.RentalNoteWithColor, error) {
	notes, err := s.r.List(ctx, model.RentalActive)
	if err != nil {
		return nil, err
	}
	out := []model.RentalNoteWithColor{}
	for _, wc := range withColors(notes) {
		if wc.ColorStatus == want {
			out = append(out, wc)
		}
	}
	return out, nil
}

// withColors classifies against a single now snapshot so a long listing
// cannot straddle a day boundary mid-response.
func withColors(notes []model.RentalNote) []model.RentalNoteWithColor {
	now := time.Now().UTC()
	out := make([]model.RentalNoteWithColor, 0, len(notes))
	for _, n := range notes {
		out = append(out, model.RentalNoteWithColor{
			RentalNote:  n,
			ColorStatus: StatusColor(n.RentalDate, n.Status, now),
		})
	}
	return out
}

func (s *service) Retrieve(ctx context.Context, id string) error {
	ok, err := s.r.SetStatus(ctx, id, model.RentalRetrieved)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) MarkPaid(ctx context.Context, id string) error {
	n, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return makeErr(ErrNotFound)
	}

	if _, err := s.r.SetPaid(ctx, id); err != nil {
		return err
	}

	now := time.Now().UTC()
	noteID := n.ID
	rc := &model.Receivable{
		ID:           uuid.NewString(),
		ClientName:   n.ClientName,
		DumpsterCode: n.DumpsterCode,
		RentalNoteID: &noteID,
		Amount:       n.Price,
		ReceivedDate: now.Format(time.RFC3339),
		CreatedAt:    now,
	}
	return s.fr.InsertReceivable(ctx, rc)
}

func (s *service) UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error {
	ok, err := s.r.SetCoordinates(ctx, id, lat, lon)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

// Geocode resolves the note's stored address and saves the coordinates.
func (s *service) Geocode(ctx context.Context, id string) (*model.RentalNote, error) {
	n, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, makeErr(ErrNotFound)
	}
	if strings.TrimSpace(n.ClientAddress) == "" {
		return nil, makeErr(ErrNoAddress)
	}

	res, err := s.g.Search(ctx, n.ClientAddress)
	if err != nil {
		return nil, err
	}
	if _, err := s.r.SetCoordinates(ctx, id, res.Latitude, res.Longitude); err != nil {
		return nil, err
	}
	n.Latitude = &res.Latitude
	n.Longitude = &res.Longitude
	return n, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

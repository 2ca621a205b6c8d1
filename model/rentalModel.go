package model

import "time"

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalRetrieved RentalStatus = "retrieved"
)

// StatusColor is the urgency tier derived from a rental's age and status.
type StatusColor string

const (
	ColorGreen  StatusColor = "green"
	ColorYellow StatusColor = "yellow"
	ColorPurple StatusColor = "purple"
	ColorRed    StatusColor = "red"
)

// RentalNote is the central entity. Client name/address/phone are a snapshot
// taken at creation and never re-synced when the Client record changes.
// ClientID is nil for unregistered clients; name and address are then the
// only identification the note carries.
//
// RentalDate is kept as the ISO-8601 string the caller supplied. Historical
// data contains the occasional malformed date, and reports must tolerate
// them record by record.
type RentalNote struct {
	ID            string       `json:"id"`
	ClientID      *string      `json:"client_id,omitempty"`
	ClientName    string       `json:"client_name"`
	ClientAddress string       `json:"client_address"`
	ClientPhone   string       `json:"client_phone,omitempty"`
	DumpsterCode  string       `json:"dumpster_code"`
	DumpsterSize  DumpsterSize `json:"dumpster_size"`
	RentalDate    string       `json:"rental_date"`
	Description   string       `json:"description,omitempty"`
	Status        RentalStatus `json:"status"`
	IsPaid        bool         `json:"is_paid"`
	Price         float64      `json:"price"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// RentalNoteWithColor is the read-side shape for listings.
type RentalNoteWithColor struct {
	RentalNote
	ColorStatus StatusColor `json:"color_status"`
}

package model

import "time"

// Payment is a scheduled outgoing obligation. Immutable once created.
type Payment struct {
	ID          string    `json:"id"`
	AccountName string    `json:"account_name"`
	Amount      float64   `json:"amount"`
	DueDate     string    `json:"due_date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Receivable records incoming funds. Created explicitly by a caller or
// automatically when a rental note is marked paid; the auto path copies
// the client name, dumpster code and price off the note.
type Receivable struct {
	ID           string    `json:"id"`
	ClientName   string    `json:"client_name"`
	DumpsterCode string    `json:"dumpster_code,omitempty"`
	RentalNoteID *string   `json:"rental_note_id,omitempty"`
	Amount       float64   `json:"amount"`
	ReceivedDate string    `json:"received_date"`
	CreatedAt    time.Time `json:"created_at"`
}

package model

import "time"

type Client struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	TaxID            string    `json:"tax_id,omitempty"`
	SecondaryAddress string    `json:"secondary_address,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

package model

import "time"

type DumpsterSize string

const (
	SizeSmall  DumpsterSize = "Small"
	SizeMedium DumpsterSize = "Medium"
	SizeLarge  DumpsterSize = "Large"
)

// DumpsterType is one of the three fixed size tiers. Exactly one record
// exists per size; only the price is mutable.
type DumpsterType struct {
	ID        string       `json:"id"`
	Size      DumpsterSize `json:"size"`
	Volume    string       `json:"volume"`
	Price     float64      `json:"price"`
	CreatedAt time.Time    `json:"created_at"`
}

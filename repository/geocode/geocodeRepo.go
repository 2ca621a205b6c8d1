package geocoderepo

import (
	"context"
	"errors"
)

var ErrNoMatch = errors.New("geocode: no match for address")

type Result struct {
	Latitude  float64
	Longitude float64
}

type Repo interface {
	Search(ctx context.Context, address string) (*Result, error)
}

package rental

import (
	"github.com/EstevanMarcatti/DISKFINAL2/model"
	rs "github.com/EstevanMarcatti/DISKFINAL2/service/rental"
)

type CreateRentalReq struct {
	ClientID      *string  `json:"client_id"`
	ClientName    string   `json:"client_name"`
	ClientAddress string   `json:"client_address"`
	ClientPhone   string   `json:"client_phone"`
	DumpsterCode  string   `json:"dumpster_code" validate:"required"`
	DumpsterSize  string   `json:"dumpster_size" validate:"required,oneof=Small Medium Large"`
	RentalDate    string   `json:"rental_date" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

func (r CreateRentalReq) toInput() rs.CreateInput {
	return rs.CreateInput{
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		ClientPhone:   r.ClientPhone,
		DumpsterCode:  r.DumpsterCode,
		DumpsterSize:  model.DumpsterSize(r.DumpsterSize),
		RentalDate:    r.RentalDate,
		Description:   r.Description,
		Price:         r.Price,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}

type CoordinatesReq struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

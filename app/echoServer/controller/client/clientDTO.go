package client

import clientsvc "github.com/EstevanMarcatti/DISKFINAL2/service/client"

type ClientReq struct {
	Name             string `json:"name" validate:"required"`
	Address          string `json:"address" validate:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	TaxID            string `json:"tax_id"`
	SecondaryAddress string `json:"secondary_address"`
	Notes            string `json:"notes"`
}

func (r ClientReq) toInput() clientsvc.Input {
	return clientsvc.Input{
		Name:             r.Name,
		Address:          r.Address,
		Phone:            r.Phone,
		Email:            r.Email,
		TaxID:            r.TaxID,
		SecondaryAddress: r.SecondaryAddress,
		Notes:            r.Notes,
	}
}

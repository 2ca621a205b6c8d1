package finance

import financesvc "github.com/EstevanMarcatti/DISKFINAL2/service/finance"

type PaymentReq struct {
	AccountName string  `json:"account_name" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"required"`
	Description string  `json:"description"`
}

func (r PaymentReq) toInput() financesvc.PaymentInput {
	return financesvc.PaymentInput{
		AccountName: r.AccountName,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Description: r.Description,
	}
}

type ReceivableReq struct {
	ClientName   string  `json:"client_name" validate:"required"`
	DumpsterCode string  `json:"dumpster_code"`
	RentalNoteID *string `json:"rental_note_id"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	ReceivedDate string  `json:"received_date" validate:"required"`
}

func (r ReceivableReq) toInput() financesvc.ReceivableInput {
	return financesvc.ReceivableInput{
		ClientName:   r.ClientName,
		DumpsterCode: r.DumpsterCode,
		RentalNoteID: r.RentalNoteID,
		Amount:       r.Amount,
		ReceivedDate: r.ReceivedDate,
	}
}

type ReportReq struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

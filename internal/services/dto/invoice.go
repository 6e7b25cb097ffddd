package dto

type InvoiceItem struct {
	Description string `json:"description" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	UnitCents   int64  `json:"unitCents" validate:"required,gt=0"`
}

type CreateInvoiceRequest struct {
	CustomerName string        `json:"customerName" validate:"required,min=2,max=200"`
	Items        []InvoiceItem `json:"items" validate:"required,min=1,dive"`
}

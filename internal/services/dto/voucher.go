package dto

type RedeemVoucherRequest struct {
	Code string `json:"code" validate:"required"`
}

type GenerateVouchersRequest struct {
	Count int `json:"count" validate:"required,min=1,max=100"`
}

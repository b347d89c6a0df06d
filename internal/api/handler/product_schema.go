package handler

// productRequest is the writable product payload, shared by create and
// update (full-document replace). Quantity defaults to 0 when omitted.
type productRequest struct {
	Name     string `json:"name"     validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

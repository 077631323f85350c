package dto

type VerifyKWDTO struct {
	KWNumber string `json:"kw_number" validate:"required,kw_number"`
}

type KWVerificationDTO struct {
	KWNumber string `json:"kw_number"`
	Report   string `json:"report"` // markdown
}

type GeocodeDTO struct {
	Location string `json:"location" validate:"required"`
}

type GeocodeResultDTO struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Voivodeship string  `json:"voivodeship"`
}

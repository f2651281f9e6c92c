package mod

//卡组织
type CardType string

const (
	CardTypeVisa       CardType = "Visa"
	CardTypeMastercard CardType = "Mastercard"
	CardTypeAmex       CardType = "American Express"
	CardTypeDiscover   CardType = "Discover"
	CardTypeJCB        CardType = "JCB"
	CardTypeDinersClub CardType = "Diners Club"
	CardTypeUnionPay   CardType = "UnionPay"
	CardTypeMaestro    CardType = "Maestro"
	CardTypeUnknown    CardType = "Unknown"
)

type CardRecord struct {
	Number          string   `json:"number"`
	Cvv             string   `json:"cvv"`
	ExpirationMonth string   `json:"expirationMonth"` //MM
	ExpirationYear  string   `json:"expirationYear"`  //YYYY
	Type            CardType `json:"type"`
}

type Expiration struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// GenerationRequest is owned by the caller; Cvv and Expiration are optional overrides.
type GenerationRequest struct {
	Bin        string
	Quantity   int
	Cvv        string
	Expiration *Expiration
}

//生成请求体
type GenerateBody struct {
	Bin             string `json:"bin" binding:"required"`
	Quantity        int    `json:"quantity"`
	Cvv             string `json:"cvv"`
	ExpirationMonth string `json:"expirationMonth"`
	ExpirationYear  string `json:"expirationYear"`
}

// Request converts the body into a GenerationRequest. The expiration override
// only applies when both month and year are supplied.
func (b GenerateBody) Request() GenerationRequest {
	req := GenerationRequest{Bin: b.Bin, Quantity: b.Quantity, Cvv: b.Cvv}
	if b.ExpirationMonth != "" || b.ExpirationYear != "" {
		req.Expiration = &Expiration{Month: b.ExpirationMonth, Year: b.ExpirationYear}
	}
	return req
}

type CardClassification struct {
	Network   CardType `json:"network"`
	Length    int      `json:"length"`
	CvvLength int      `json:"cvvLength"`
}

type CardValidation struct {
	Valid   bool     `json:"valid"`
	Network CardType `json:"network"`
}

type CardBatch struct {
	Count int          `json:"count"`
	Cards []CardRecord `json:"cards"`
}

package paystack

type InitializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"` // minor units (pesewas)
	Reference string `json:"reference"`
	Currency  string `json:"currency"`
	Callback  string `json:"callback_url,omitempty"`
}

type InitializeResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

type VerifyResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"` // "success", "failed", "abandoned"
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paidAt"`
}

// Wire shapes of the Paystack REST API.

type apiEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type initializeAPIResponse struct {
	apiEnvelope
	Data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyAPIResponse struct {
	apiEnvelope
	Data struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		PaidAt    string `json:"paid_at"`
	} `json:"data"`
}

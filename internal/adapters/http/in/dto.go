package in

// CreateUserInput is the request body for POST /users.
type CreateUserInput struct {
	User string `json:"user" validate:"required"`
}

// MoneyInput is the request body for deposit and withdraw.
type MoneyInput struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required"`
}

// SendInput is the request body for POST /send.
type SendInput struct {
	From     string  `json:"from" validate:"required"`
	To       string  `json:"to" validate:"required,nefield=From"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required"`
}

// BalanceOutput is the response body for a balance-carrying success.
type BalanceOutput struct {
	Balance float64 `json:"balance"`
}

// TransferOutput is the response body for a successful send.
type TransferOutput struct {
	FromBalance float64 `json:"fromBalance"`
	ToBalance   float64 `json:"toBalance"`
}

package expense

import "github.com/frahmantamala/finance-tracker/internal"

// CreateExpenseDTO represents the request payload for creating an expense
type CreateExpenseDTO struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note,omitempty"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.Amount == 0 || dto.Category == "" {
		return internal.ErrMissingField
	}
	if dto.Amount < 0 {
		return internal.NewValidationError("amount must be positive", internal.ErrCodeInvalidAmount)
	}
	return nil
}

// UpdateExpenseDTO is a shallow patch: only supplied fields are applied,
// everything else stays untouched.
type UpdateExpenseDTO struct {
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
	Note     *string  `json:"note,omitempty"`
}

func (dto UpdateExpenseDTO) Validate() error {
	if dto.Amount != nil && *dto.Amount <= 0 {
		return internal.NewValidationError("amount must be positive", internal.ErrCodeInvalidAmount)
	}
	if dto.Category != nil && *dto.Category == "" {
		return internal.ErrMissingField
	}
	return nil
}

type ExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

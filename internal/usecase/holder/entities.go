package holder

import "time"

type CreateHolderInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Title     *string `json:"title"`
	Workplace *string `json:"workplace"`
	Mobile    *string `json:"mobile"`
	Email     *string `json:"email"`
	Code      *string `json:"code"`
	Notes     *string `json:"notes"`
}

// UpdateHolderInput carries partial updates; nil fields are left untouched.
type UpdateHolderInput struct {
	Title     *string `json:"title"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Workplace *string `json:"workplace"`
	Mobile    *string `json:"mobile"`
	Email     *string `json:"email"`
	Code      *string `json:"code"`
	Notes     *string `json:"notes"`
}

type HolderDTO struct {
	ID        uint64    `json:"id"`
	ShortCode string    `json:"short_code"`
	Title     *string   `json:"title,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Workplace *string   `json:"workplace,omitempty"`
	Mobile    *string   `json:"mobile,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Code      string    `json:"code"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DependencyCount struct {
	Withdrawals int64 `json:"withdrawals"`
}

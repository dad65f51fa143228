package readmodel

import (
	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

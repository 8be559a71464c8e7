package domain

import "github.com/google/uuid"

// Washer профиль мойщика
type Washer struct {
	ID          uuid.UUID
	DisplayName string
	Phone       string
}

package models

import "time"

// User is an application user resolved through the external OAuth exchange.
// Role is informational only; no endpoint restricts by it.
type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Picture   string    `bson:"picture,omitempty" json:"picture,omitempty"`
	Role      string    `bson:"role" json:"role"` // Admin, Manager, Mechanic, Driver
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

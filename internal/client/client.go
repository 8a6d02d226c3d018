// Package client holds the customer contact book.
package client

import "github.com/google/uuid"

// Client is a customer a quote or receipt can be addressed to.
type Client struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Address string    `json:"address,omitempty"`
}

package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactListLimit caps GET /api/contacts.
const ContactListLimit = 100

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates in before touching the store, then saves it with a
	// new id, the current time and status "unread".
	Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)

	// List returns the newest contact messages.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

package model

import "time"

// ContactStatusUnread is the status every contact message starts with.
const ContactStatusUnread = "unread"

// ContactInput is the body of a contact form submission.
type ContactInput struct {
	Name    string  `json:"name" bson:"name" validate:"required,max=200"`
	Email   string  `json:"email" bson:"email" validate:"required,email"`
	Subject string  `json:"subject" bson:"subject" validate:"required,max=200"`
	Message string  `json:"message" bson:"message" validate:"required,max=5000"`
	Phone   *string `json:"phone" bson:"phone" validate:"omitempty,max=40"`
}

// ContactMessage represents a message submitted via the contact form.
// Messages are append-only.
type ContactMessage struct {
	ID           string `json:"id" bson:"id"`
	ContactInput `bson:",inline"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	Status       string    `json:"status" bson:"status"`
}

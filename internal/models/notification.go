package models

// Notification is a partner-facing alert. Read transitions one way, from
// unread to read, and only after the backend has acknowledged the change.
type Notification struct {
	ID        int     `json:"id" validate:"required"`
	PartnerID int     `json:"partner_id"`
	Title     string  `json:"title" validate:"required"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	IsGeneral bool    `json:"isGeneral"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt" validate:"required"`
	UpdatedAt string  `json:"updatedAt"`
	DeletedAt *string `json:"deletedAt"`
}

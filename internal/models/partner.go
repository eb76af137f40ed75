package models

// Wallet holds the partner's ledger balance as reported by the backend.
// Balances are decimal strings on the wire and are never parsed into
// floats for arithmetic, only for display.
type Wallet struct {
	Balance string `json:"balance" validate:"required"`
}

// Authorization is the bearer credential issued on login.
type Authorization struct {
	Token     string `json:"token" validate:"required"`
	ExpiresIn int    `json:"expiresIn" validate:"required,min=1"`
}

// Partner represents a partner account. The login payload carries an
// Authorization alongside it; the profile payload carries the unread
// notification count instead.
type Partner struct {
	ID                int            `json:"id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	Email             string         `json:"email" validate:"required,email"`
	Phone             string         `json:"phone"`
	DeviceToken       *string        `json:"device_token"`
	Role              string         `json:"role"`
	IsActive          int            `json:"isActive"`
	IsSuspended       int            `json:"isSuspended"`
	NotificationCount int            `json:"notification_count"`
	CreatedAt         string         `json:"createdAt"`
	UpdatedAt         string         `json:"updatedAt"`
	DeletedAt         *string        `json:"deletedAt"`
	Wallet            Wallet         `json:"wallet"`
	Authorization     *Authorization `json:"authorization,omitempty"`
}

// Pagination is the paging envelope shared by every paged partner endpoint.
// PrevPage and NextPage are null at the ends of the range.
type Pagination struct {
	PrevPage    *int `json:"prevPage"`
	CurrentPage int  `json:"currentPage" validate:"required,min=1"`
	NextPage    *int `json:"nextPage"`
	PageTotal   int  `json:"pageTotal" validate:"required,min=1"`
	PageSize    int  `json:"pageSize" validate:"required,min=1"`
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.PrevPage != nil }

// HasNext reports whether a further page exists.
func (p Pagination) HasNext() bool { return p.NextPage != nil }

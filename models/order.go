package models

import "time"

// Size is the pizza size. Serialized as its bare value ("MEDIUM"),
// never a qualified name.
type Size string

const (
	SizeSmall      Size = "SMALL"
	SizeMedium     Size = "MEDIUM"
	SizeLarge      Size = "LARGE"
	SizeExtraLarge Size = "EXTRA_LARGE"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

// OrderStatus is the order lifecycle state. Transitions are unconditional:
// any status may be set from any other status.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusInTransit OrderStatus = "IN_TRANSIT"
	StatusDelivered OrderStatus = "DELIVERED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	Size        Size        `json:"size"`
	Flavour     string      `json:"flavour"`
	Quantity    int         `json:"quantity"`
	OrderStatus OrderStatus `json:"order_status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

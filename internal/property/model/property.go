package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusRented, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses can never be left; they only age out via the
// expiration sweep.
func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusRented
}

type Purchase string

const (
	PurchaseForSale Purchase = "ForSale"
	PurchaseForRent Purchase = "ForRent"
)

// Property is a listing. BuyerID is set exactly when the status is sold or
// rented; TransactionDate is set whenever the status leaves available and
// cleared on reactivation.
type Property struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	OwnerID uuid.UUID `bun:",notnull,type:uuid"`
	Title   string    `bun:",notnull"`

	Status   Status   `bun:",notnull,default:'available'"`
	Purchase Purchase `bun:",notnull"`

	BuyerID         *uuid.UUID `bun:",nullzero,type:uuid"`
	TransactionDate *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

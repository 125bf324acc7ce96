package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom pairs a prospective buyer with a property's seller. It holds a
// back reference to the property and is cascade-deleted with it.
type ChatRoom struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	PropertyID uuid.UUID `bun:",notnull,type:uuid"`
	BuyerID    uuid.UUID `bun:",notnull,type:uuid"`
	SellerID   uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt     time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	LastMessageAt *time.Time `bun:",nullzero"`
}

// Peer returns the other participant of the room.
func (r ChatRoom) Peer(userID uuid.UUID) uuid.UUID {
	if r.BuyerID == userID {
		return r.SellerID
	}
	return r.BuyerID
}

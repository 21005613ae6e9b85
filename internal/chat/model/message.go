package model

import (
	"time"

	"github.com/google/uuid"

	groupmodel "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
	user "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
)

type Message struct {
	ID      uuid.UUID         `bun:",pk,type:uuid,default:gen_random_uuid()"`
	GroupID uuid.UUID         `bun:",notnull,type:uuid"`
	Group   *groupmodel.Group `bun:"rel:belongs-to,join:group_id=id"`

	SenderID string     `bun:",notnull"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	MessageBody string `bun:",notnull"`

	// Pos is the 1-based append position within the group. It is assigned
	// under the group row lock and is the retrieval order; CreatedAt is a
	// monotone label for that order, not the ordering mechanism.
	Pos       int64     `bun:",notnull"`
	CreatedAt time.Time `bun:",notnull"`
}

// MessageReply links a message to an earlier message of the same group.
// A message with no rows here is not a reply.
type MessageReply struct {
	MessageID uuid.UUID `bun:",pk,type:uuid"`
	ReplyToID uuid.UUID `bun:",pk,type:uuid"`
}

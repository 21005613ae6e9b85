package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// GroupMember is one participant row. The admin set is the subset of rows
// with Role = admin, so an admin can never exist outside the participant
// set and deleting the row drops both memberships in one statement.
type GroupMember struct {
	GroupID uuid.UUID `bun:",pk,type:uuid"`
	Group   *Group    `bun:"rel:belongs-to,join:group_id=id"`

	UserID string     `bun:",pk"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Role string `bun:",notnull,default:'member'"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

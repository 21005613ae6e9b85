package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
	usermodels "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type GroupRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrMemberNotFound = errors.New("user is not a participant of the group")

	// Returned when the unique index rejects a name that raced past the
	// GroupNameExists pre-check.
	ErrDuplicateGroupName = errors.New("groupName already taken")
)

func NewGroupRepository(db *bun.DB, logger *logger.Logger) *GroupRepository {
	return &GroupRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, g *models.Group, participantIDs []string) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ids := append([]string{g.CreatedBy}, participantIDs...)
		if err := usersExist(ctx, tx, ids); err != nil {
			return err
		}

		if _, err := tx.NewInsert().Model(g).Returning("*").Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateGroupName
			}
			return errors.Wrap(err, "groupRepo.CreateGroup.InsertGroup: ")
		}

		members := make([]models.GroupMember, 0, len(participantIDs)+1)
		members = append(members, models.GroupMember{
			GroupID: g.ID,
			UserID:  g.CreatedBy,
			Role:    models.RoleAdmin,
		})
		for _, id := range participantIDs {
			if id == g.CreatedBy {
				continue
			}
			members = append(members, models.GroupMember{
				GroupID: g.ID,
				UserID:  id,
				Role:    models.RoleMember,
			})
		}

		if _, err := tx.NewInsert().
			Model(&members).
			On("CONFLICT (group_id, user_id) DO NOTHING").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "groupRepo.CreateGroup.InsertMembers: ")
		}
		return nil
	})
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {

	g := new(models.Group)
	err := r.db.NewSelect().Model(g).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, errors.Wrap(err, "groupRepo.GetGroupByID.Scan: ")
	}
	return g, nil
}

func (r *GroupRepository) GetGroupByName(ctx context.Context, name string) (*models.Group, error) {

	g := new(models.Group)
	err := r.db.NewSelect().Model(g).Where("group_name = ?", name).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, errors.Wrap(err, "groupRepo.GetGroupByName.Scan: ")
	}
	return g, nil
}

func (r *GroupRepository) GroupNameExists(ctx context.Context, name string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Group)(nil)).
		Where("group_name = ?", name).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "groupRepo.GroupNameExists.Exists: ")
	}
	return exists, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID uuid.UUID, userID, role string) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := groupExists(ctx, tx, groupID); err != nil {
			return err
		}
		if err := usersExist(ctx, tx, []string{userID}); err != nil {
			return err
		}

		member := &models.GroupMember{
			GroupID: groupID,
			UserID:  userID,
			Role:    role,
		}
		if _, err := tx.NewInsert().
			Model(member).
			On("CONFLICT (group_id, user_id) DO NOTHING").
			Exec(ctx); err != nil {
			return errors.Wrap(err, "groupRepo.AddMember.Insert: ")
		}
		return nil
	})
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, userID string) error {

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := groupExists(ctx, tx, groupID); err != nil {
			return err
		}
		if err := usersExist(ctx, tx, []string{userID}); err != nil {
			return err
		}

		// Single delete: the participant and any admin role go together.
		if _, err := tx.NewDelete().
			Model((*models.GroupMember)(nil)).
			Where("group_id = ? AND user_id = ?", groupID, userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "groupRepo.RemoveMember.Delete: ")
		}
		return nil
	})
}

func (r *GroupRepository) SetMemberRole(ctx context.Context, groupID uuid.UUID, userID, role string) error {
	res, err := r.db.NewUpdate().
		Model((*models.GroupMember)(nil)).
		Set("role = ?", role).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.SetMemberRole.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "groupRepo.SetMemberRole.RowsAffected: ")
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *GroupRepository) IsMember(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.GroupMember)(nil)).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "groupRepo.IsMember.Exists: ")
	}
	return exists, nil
}

func (r *GroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.NewSelect().
		Model(&members).
		Where("group_id = ?", groupID).
		Order("joined_at ASC", "user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "groupRepo.ListMembers.Scan: ")
	}
	return members, nil
}

func (r *GroupRepository) SetDisappearingMessages(ctx context.Context, groupID uuid.UUID, enabled bool) error {
	res, err := r.db.NewUpdate().
		Model((*models.Group)(nil)).
		Set("disappearing_messages = ?", enabled).
		Set("updated_at = current_timestamp").
		Where("id = ?", groupID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.SetDisappearingMessages.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "groupRepo.SetDisappearingMessages.RowsAffected: ")
	}
	if affected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}

func groupExists(ctx context.Context, tx bun.Tx, groupID uuid.UUID) error {
	exists, err := tx.NewSelect().
		Model((*models.Group)(nil)).
		Where("id = ?", groupID).
		Exists(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.groupExists: ")
	}
	if !exists {
		return ErrGroupNotFound
	}
	return nil
}

func usersExist(ctx context.Context, tx bun.Tx, ids []string) error {
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	distinct := make([]string, 0, len(unique))
	for id := range unique {
		distinct = append(distinct, id)
	}

	count, err := tx.NewSelect().
		Model((*usermodels.User)(nil)).
		Where("id IN (?)", bun.In(distinct)).
		Count(ctx)
	if err != nil {
		return errors.Wrap(err, "groupRepo.usersExist.Count: ")
	}
	if count != len(distinct) {
		return ErrUserNotFound
	}
	return nil
}

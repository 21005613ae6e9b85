package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/amalpanikulangara/arreWhatsapp/internal/group"
	models "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
	"github.com/amalpanikulangara/arreWhatsapp/internal/group/repository"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

type GroupUsecase struct {
	repo   group.GroupRepository
	logger *logger.Logger
}

func NewGroupUsecase(repo group.GroupRepository, logger *logger.Logger) *GroupUsecase {
	return &GroupUsecase{repo: repo, logger: logger}
}

func (uc *GroupUsecase) Create(ctx context.Context, cmd group.CreateCommand) (*group.GroupDTO, error) {
	name := strings.TrimSpace(cmd.GroupName)
	if name == "" {
		return nil, errors.ConstraintViolation("groupName is required")
	}
	if strings.TrimSpace(cmd.FounderID) == "" {
		return nil, errors.InvalidArg("founder is required")
	}

	if exists, err := uc.repo.GroupNameExists(ctx, name); err != nil {
		uc.logger.Error("database error checking group name", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrGroupNameTaken
	}

	g := &models.Group{
		GroupName:            name,
		GroupDescription:     cmd.GroupDescription,
		CreatedBy:            cmd.FounderID,
		DisappearingMessages: cmd.DisappearingMessages,
	}
	if err := uc.repo.CreateGroup(ctx, g, cmd.ParticipantIDs); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		// a concurrent create can win the unique index after the pre-check
		if errors.Is(err, repository.ErrDuplicateGroupName) {
			return nil, errors.ErrGroupNameTaken
		}
		uc.logger.Errorf("error while creating group: %v", err)
		return nil, errors.Internal("error while creating group")
	}

	return uc.Get(ctx, g.ID)
}

func (uc *GroupUsecase) Get(ctx context.Context, groupID uuid.UUID) (*group.GroupDTO, error) {
	g, err := uc.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, errors.ErrGroupNotFound
		}
		uc.logger.Error("failed to load group", "group_id", groupID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	members, err := uc.repo.ListMembers(ctx, groupID)
	if err != nil {
		uc.logger.Error("failed to load group members", "group_id", groupID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	return toGroupDTO(g, members), nil
}

func (uc *GroupUsecase) GetByName(ctx context.Context, name string) (*group.GroupDTO, error) {
	g, err := uc.repo.GetGroupByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, errors.ErrGroupNotFound
		}
		uc.logger.Error("failed to load group by name", "group_name", name, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.Get(ctx, g.ID)
}

func (uc *GroupUsecase) IsParticipant(ctx context.Context, groupID uuid.UUID, userID string) (bool, error) {
	if _, err := uc.repo.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return false, errors.ErrGroupNotFound
		}
		uc.logger.Error("failed to load group", "group_id", groupID, "err", err)
		return false, errors.Internal("internal server error")
	}

	ok, err := uc.repo.IsMember(ctx, groupID, userID)
	if err != nil {
		uc.logger.Error("membership lookup failed", "group_id", groupID, "user_id", userID, "err", err)
		return false, errors.Internal("internal server error")
	}
	return ok, nil
}

func (uc *GroupUsecase) AddParticipant(ctx context.Context, groupID uuid.UUID, userID string) error {
	err := uc.repo.AddMember(ctx, groupID, userID, models.RoleMember)
	return uc.mapMembershipErr(err, groupID, userID)
}

func (uc *GroupUsecase) RemoveParticipant(ctx context.Context, groupID uuid.UUID, userID string) error {
	err := uc.repo.RemoveMember(ctx, groupID, userID)
	return uc.mapMembershipErr(err, groupID, userID)
}

func (uc *GroupUsecase) SetAdmin(ctx context.Context, groupID uuid.UUID, userID string, enabled bool) error {
	role := models.RoleMember
	if enabled {
		role = models.RoleAdmin
	}

	err := uc.repo.SetMemberRole(ctx, groupID, userID, role)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			if enabled {
				return errors.ErrAdminNotParticipant
			}
			// revoking a role the user does not hold is a no-op
			return nil
		}
		uc.logger.Error("failed to update member role", "group_id", groupID, "user_id", userID, "err", err)
		return errors.Internal("error while updating member role")
	}
	return nil
}

func (uc *GroupUsecase) SetDisappearingMessages(ctx context.Context, groupID uuid.UUID, enabled bool) error {
	err := uc.repo.SetDisappearingMessages(ctx, groupID, enabled)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return errors.ErrGroupNotFound
		}
		uc.logger.Error("failed to toggle retention policy", "group_id", groupID, "err", err)
		return errors.Internal("error while updating group")
	}
	return nil
}

func (uc *GroupUsecase) mapMembershipErr(err error, groupID uuid.UUID, userID string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrGroupNotFound) {
		return errors.ErrGroupNotFound
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.ErrUserNotFound
	}
	uc.logger.Error("membership update failed", "group_id", groupID, "user_id", userID, "err", err)
	return errors.Internal("error while updating membership")
}

func toGroupDTO(g *models.Group, members []models.GroupMember) *group.GroupDTO {
	dto := &group.GroupDTO{
		ID:                   g.ID,
		GroupName:            g.GroupName,
		GroupDescription:     g.GroupDescription,
		CreatedBy:            g.CreatedBy,
		DisappearingMessages: g.DisappearingMessages,
		CreatedAt:            g.CreatedAt,
	}
	for _, m := range members {
		dto.Participants = append(dto.Participants, group.ParticipantDTO{
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}
	return dto
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

type rosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) domain.RosterRepository {
	return &rosterRepository{
		db: db,
	}
}

// GetRoster returns the group and its member ids ordered by discord id.
func (r *rosterRepository) GetRoster(ctx context.Context, groupID domain.GroupID) (*domain.Roster, error) {
	var group discordGroupModel
	err := r.db.WithContext(ctx).First(&group, "id = ?", groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to retrieve group %s: %w", groupID, err)
	}

	var memberIDs []string
	err = r.db.WithContext(ctx).
		Model(&groupMemberModel{}).
		Where("group_id = ?", groupID).
		Order("discord_id").
		Pluck("discord_id", &memberIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve members of group %s: %w", groupID, err)
	}

	members := make([]domain.UserID, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, domain.UserID(id))
	}

	return &domain.Roster{
		GroupID:   group.ID,
		Name:      group.Name,
		MemberIDs: members,
	}, nil
}

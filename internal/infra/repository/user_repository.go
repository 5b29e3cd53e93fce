package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) GetUser(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	var user discordUserModel
	err := r.db.WithContext(ctx).First(&user, "discord_id = ?", string(userID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user %s: %w", userID, err)
	}

	return &domain.User{
		ID:       domain.UserID(user.DiscordID),
		SourceID: user.ScheduleID,
	}, nil
}

package repository

import (
	"time"

	"github.com/google/uuid"
)

type scheduleModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

func (scheduleModel) TableName() string { return "schedules" }

type timeSlotModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;index:idx_time_slots_schedule_id"`
	StartTime  time.Time `gorm:"not null;index:idx_time_slots_start_time"`
	EndTime    time.Time `gorm:"not null;index:idx_time_slots_end_time;check:valid_time_range,end_time > start_time"`
	// IsRecurring is stored for schema compatibility; slots are read as-is.
	IsRecurring bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;default:now()"`
}

func (timeSlotModel) TableName() string { return "time_slots" }

type discordUserModel struct {
	DiscordID  string     `gorm:"type:varchar(255);primaryKey"`
	ScheduleID *uuid.UUID `gorm:"type:uuid;index:idx_discord_users_schedule_id"`
	CreatedAt  time.Time  `gorm:"not null;default:now()"`
}

func (discordUserModel) TableName() string { return "discord_users" }

type discordGroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ServerID  string    `gorm:"type:varchar(255);not null;index:idx_discord_groups_server_id"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (discordGroupModel) TableName() string { return "discord_groups" }

type groupMemberModel struct {
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_group_members_group_id"`
	DiscordID string    `gorm:"type:varchar(255);primaryKey;index:idx_group_members_discord_id"`
}

func (groupMemberModel) TableName() string { return "group_members" }

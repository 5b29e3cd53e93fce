package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

type intervalRepository struct {
	db *gorm.DB
}

func NewIntervalRepository(db *gorm.DB) domain.IntervalRepository {
	return &intervalRepository{
		db: db,
	}
}

// GetIntervals returns the time slots of a schedule sorted by (start, end).
// A schedule without slots yields an empty slice.
func (r *intervalRepository) GetIntervals(ctx context.Context, sourceID domain.SourceID) ([]domain.Interval, error) {
	var slots []timeSlotModel
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", sourceID).
		Order("start_time, end_time").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve time slots of schedule %s: %w", sourceID, err)
	}

	intervals := make([]domain.Interval, 0, len(slots))
	for _, slot := range slots {
		interval, err := domain.NewInterval(slot.StartTime, slot.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s: %w", ErrInvalidSlotData, slot.ID, err)
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}

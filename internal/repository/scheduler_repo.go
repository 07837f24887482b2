package repository

import (
	"Verdure/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SchedulerRepo interface {
	GetOrCreate(ctx context.Context) (*model.SchedulerFlag, error)
	Update(ctx context.Context, flag *model.SchedulerFlag) error
}

type schedulerRepoImpl struct {
	db *gorm.DB
}

func NewSchedulerRepository(db *gorm.DB) SchedulerRepo {
	return &schedulerRepoImpl{
		db: db,
	}
}

func (s *schedulerRepoImpl) GetOrCreate(ctx context.Context) (*model.SchedulerFlag, error) {
	var flag model.SchedulerFlag
	err := s.db.WithContext(ctx).First(&flag, model.SchedulerFlagID).Error
	if err == nil {
		return &flag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	flag = model.SchedulerFlag{
		ID:      model.SchedulerFlagID,
		LastRun: time.Time{},
	}
	if err = s.db.WithContext(ctx).Create(&flag).Error; err != nil {
		return nil, err
	}
	return &flag, nil
}

func (s *schedulerRepoImpl) Update(ctx context.Context, flag *model.SchedulerFlag) error {
	return s.db.WithContext(ctx).Model(&model.SchedulerFlag{}).
		Where("id = ?", model.SchedulerFlagID).
		Updates(map[string]interface{}{
			"last_run":   flag.LastRun,
			"is_running": flag.IsRunning,
			"task_id":    flag.TaskID,
		}).Error
}

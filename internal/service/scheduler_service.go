package service

import (
	"Verdure/internal/pkg/consts"
	"Verdure/internal/pkg/redis"
	"Verdure/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// LeaseTTL 生成租约的过期时间，运行崩溃后租约到期自动解除互斥
const LeaseTTL = 30 * time.Minute

// Locker 分布式租约，原子获取、按持有者释放
type Locker interface {
	Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string, token string)
}

type SchedulerService interface {
	// ShouldRun 判断当天是否还欠一次生成
	ShouldRun(ctx context.Context, now time.Time) (bool, error)
	// BeginRun 获取租约并登记运行状态，返回 false 表示已有运行在进行
	BeginRun(ctx context.Context, taskID string) (bool, error)
	// EndRun 无论运行成败都必须调用，释放租约并复位标志
	EndRun(ctx context.Context, now time.Time, taskID string) error
}

type schedulerServiceImpl struct {
	schedulerRepo repository.SchedulerRepo
	locker        Locker
}

func NewSchedulerService(schedulerRepo repository.SchedulerRepo, locker Locker) SchedulerService {
	if locker == nil {
		locker = &redisLocker{}
	}
	return &schedulerServiceImpl{
		schedulerRepo: schedulerRepo,
		locker:        locker,
	}
}

func (s *schedulerServiceImpl) ShouldRun(ctx context.Context, now time.Time) (bool, error) {
	flag, err := s.schedulerRepo.GetOrCreate(ctx)
	if err != nil {
		return false, err
	}
	if flag.IsRunning {
		return false, nil
	}
	return beforeDate(flag.LastRun, now), nil
}

func (s *schedulerServiceImpl) BeginRun(ctx context.Context, taskID string) (bool, error) {
	ok, err := s.locker.Acquire(ctx, consts.DailyGenerateLock, taskID, LeaseTTL)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	flag, err := s.schedulerRepo.GetOrCreate(ctx)
	if err != nil {
		s.locker.Release(ctx, consts.DailyGenerateLock, taskID)
		return false, err
	}

	flag.IsRunning = true
	flag.TaskID = taskID
	if err = s.schedulerRepo.Update(ctx, flag); err != nil {
		s.locker.Release(ctx, consts.DailyGenerateLock, taskID)
		return false, err
	}
	return true, nil
}

func (s *schedulerServiceImpl) EndRun(ctx context.Context, now time.Time, taskID string) error {
	defer s.locker.Release(ctx, consts.DailyGenerateLock, taskID)

	flag, err := s.schedulerRepo.GetOrCreate(ctx)
	if err != nil {
		return err
	}

	flag.IsRunning = false
	flag.LastRun = now
	flag.TaskID = ""
	if err = s.schedulerRepo.Update(ctx, flag); err != nil {
		log.ErrorContext(ctx, "调度标志复位失败", "err", err)
		return err
	}
	return nil
}

// beforeDate 仅比较日历日期
func beforeDate(last, now time.Time) bool {
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	if ly != ny {
		return ly < ny
	}
	if lm != nm {
		return lm < nm
	}
	return ld < nd
}

// redisLocker 默认租约实现，SETNX 加锁、Lua 比对后删除
type redisLocker struct{}

func (s *redisLocker) Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error) {
	return redis.TryLock(ctx, key, token, ttl, 1)
}

func (s *redisLocker) Release(ctx context.Context, key string, token string) {
	redis.UnLock(ctx, key, token)
}

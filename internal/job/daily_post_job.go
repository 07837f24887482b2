package job

import (
	"Verdure/internal/model"
	"Verdure/internal/pkg/logger"
	"Verdure/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// retryBaseDelay 失败重试的基础退避，第 n 次重试等待 60 * 2^n 秒
const retryBaseDelay = 60 * time.Second

// DailyPostJob 每日建帖任务。触发后先查当天是否已生成，
// 再以租约互斥执行管线，硬失败按指数退避重试
type DailyPostJob struct {
	schedulerService  service.SchedulerService
	generationService service.GenerationService
	maxRetries        int

	sleep func(ctx context.Context, d time.Duration) error
}

func NewDailyPostJob(schedulerService service.SchedulerService, generationService service.GenerationService, maxRetries int) *DailyPostJob {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &DailyPostJob{
		schedulerService:  schedulerService,
		generationService: generationService,
		maxRetries:        maxRetries,
		sleep:             sleepCtx,
	}
}

// Run 实现 cron.Job
func (s *DailyPostJob) Run() {
	traceID := "job-dailypost-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if _, err := s.RunIfDue(ctx); err != nil {
		log.ErrorContext(ctx, "每日生成任务失败", "err", err)
	}
}

// RunIfDue 当天未生成时执行一次管线，已生成或在运行则为无操作。
// HTTP 的定时触发入口与 cron 共用这条路径。
func (s *DailyPostJob) RunIfDue(ctx context.Context) (*service.GenerateResult, error) {
	due, err := s.schedulerService.ShouldRun(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	if !due {
		log.InfoContext(ctx, "今日帖子已生成，跳过")
		return nil, nil
	}

	taskID := uuid.NewString()
	ok, err := s.schedulerService.BeginRun(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.InfoContext(ctx, "未获取到生成租约，跳过")
		return nil, nil
	}
	defer func() {
		if endErr := s.schedulerService.EndRun(ctx, time.Now(), taskID); endErr != nil {
			log.ErrorContext(ctx, "结束运行登记失败", "err", endErr)
		}
	}()

	return s.generateWithRetry(ctx)
}

func (s *DailyPostJob) generateWithRetry(ctx context.Context) (*service.GenerateResult, error) {
	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * (1 << attempt)
			log.WarnContext(ctx, "生成失败，等待重试", "attempt", attempt, "delay", delay, "err", lastErr)
			if err := s.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		result, err := s.generationService.Generate(ctx, model.Category(""), false)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

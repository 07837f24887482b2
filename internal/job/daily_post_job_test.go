package job

import (
	"Verdure/internal/model"
	"Verdure/internal/service"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduler struct {
	due     bool
	leaseOK bool
	began   int
	ended   int
	endTask string
}

func (s *fakeScheduler) ShouldRun(context.Context, time.Time) (bool, error) {
	return s.due, nil
}

func (s *fakeScheduler) BeginRun(_ context.Context, taskID string) (bool, error) {
	s.began++
	return s.leaseOK, nil
}

func (s *fakeScheduler) EndRun(_ context.Context, _ time.Time, taskID string) error {
	s.ended++
	s.endTask = taskID
	return nil
}

type fakeGeneration struct {
	errs  []error
	calls int
}

func (s *fakeGeneration) Generate(context.Context, model.Category, bool) (*service.GenerateResult, error) {
	s.calls++
	if s.calls <= len(s.errs) && s.errs[s.calls-1] != nil {
		return nil, s.errs[s.calls-1]
	}
	return &service.GenerateResult{PostID: 1, Slug: "potting-mix-guide", Created: true}, nil
}

func newTestJob(sched *fakeScheduler, gen *fakeGeneration) *DailyPostJob {
	j := NewDailyPostJob(sched, gen, 3)
	j.sleep = func(context.Context, time.Duration) error { return nil }
	return j
}

func TestRunIfDueSkipsWhenNotDue(t *testing.T) {
	sched := &fakeScheduler{due: false}
	gen := &fakeGeneration{}

	result, err := newTestJob(sched, gen).RunIfDue(context.Background())
	require.NoError(t, err)

	assert.Nil(t, result)
	assert.Zero(t, sched.began)
	assert.Zero(t, gen.calls)
}

func TestRunIfDueSkipsWhenLeaseHeld(t *testing.T) {
	sched := &fakeScheduler{due: true, leaseOK: false}
	gen := &fakeGeneration{}

	result, err := newTestJob(sched, gen).RunIfDue(context.Background())
	require.NoError(t, err)

	assert.Nil(t, result)
	assert.Equal(t, 1, sched.began)
	assert.Zero(t, sched.ended, "未拿到租约不应走 EndRun")
	assert.Zero(t, gen.calls)
}

func TestRunIfDueGeneratesOnce(t *testing.T) {
	sched := &fakeScheduler{due: true, leaseOK: true}
	gen := &fakeGeneration{}

	result, err := newTestJob(sched, gen).RunIfDue(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result)
	assert.True(t, result.Created)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, sched.ended)
	assert.NotEmpty(t, sched.endTask, "EndRun 必须携带本次运行的任务标识")
}

func TestRunIfDueRetriesTransientFailure(t *testing.T) {
	sched := &fakeScheduler{due: true, leaseOK: true}
	gen := &fakeGeneration{errs: []error{errors.New("model timeout"), errors.New("model timeout")}}

	result, err := newTestJob(sched, gen).RunIfDue(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result)
	assert.Equal(t, 3, gen.calls, "前两次失败后第三次成功")
}

func TestRunIfDueGivesUpAfterMaxRetries(t *testing.T) {
	boom := errors.New("model down")
	sched := &fakeScheduler{due: true, leaseOK: true}
	gen := &fakeGeneration{errs: []error{boom, boom, boom}}

	result, err := newTestJob(sched, gen).RunIfDue(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
	assert.Equal(t, 3, gen.calls)
	assert.Equal(t, 1, sched.ended, "失败也必须走 EndRun 复位")
}

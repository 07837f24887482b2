package llm

import (
	"golang.org/x/sync/semaphore"
)

var (
	TextWeight = int64(2)
	TextSem    = semaphore.NewWeighted(TextWeight)
)

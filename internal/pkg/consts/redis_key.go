package consts

const (
	PostDetailKey = "post:detail:"
)

const (
	DailyGenerateLock = "lock:generate:daily"
)

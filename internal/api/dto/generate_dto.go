package dto

// GenerateDTO 手动触发生成的请求
type GenerateDTO struct {
	Category string `json:"category" binding:"omitempty,oneof=plants flowers fruits gardening care"`
	Force    bool   `json:"force"`
}

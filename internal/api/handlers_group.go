package api

import "Verdure/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler     *handler.PostHandler
	ContactHandler  *handler.ContactHandler
	GenerateHandler *handler.GenerateHandler
}

package handler

import (
	"Verdure/internal/api/dto"
	"Verdure/internal/job"
	"Verdure/internal/model"
	"Verdure/internal/pkg/response"
	"Verdure/internal/service"

	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	generationSvc service.GenerationService
	dailyPostJob  *job.DailyPostJob
}

func NewGenerateHandler(generationSvc service.GenerationService, dailyPostJob *job.DailyPostJob) *GenerateHandler {
	return &GenerateHandler{
		generationSvc: generationSvc,
		dailyPostJob:  dailyPostJob,
	}
}

// Generate 手动触发一次建帖管线，category 为空时按日期选类
func (s *GenerateHandler) Generate(c *gin.Context) {
	var req dto.GenerateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.generationSvc.Generate(c.Request.Context(), model.Category(req.Category), req.Force)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GenerateDaily 定时触发入口，当天已生成时为无操作
func (s *GenerateHandler) GenerateDaily(c *gin.Context) {
	result, err := s.dailyPostJob.RunIfDue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

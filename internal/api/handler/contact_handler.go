package handler

import (
	"Verdure/internal/api/dto"
	"Verdure/internal/pkg/response"
	"Verdure/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactSvc: contactSvc,
	}
}

func (s *ContactHandler) SubmitMessage(c *gin.Context) {
	var req dto.ContactDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.contactSvc.SubmitMessage(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

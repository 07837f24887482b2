package service

import (
	"Verdure/internal/api/dto"
	"Verdure/internal/model"
	"Verdure/internal/repository"
	"context"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, message *dto.ContactDTO) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepo
}

func NewContactService(contactRepo repository.ContactRepo) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
	}
}

func (s *contactServiceImpl) SubmitMessage(ctx context.Context, message *dto.ContactDTO) error {
	return s.contactRepo.CreateMessage(ctx, &model.ContactMessage{
		Name:    message.Name,
		Email:   message.Email,
		Subject: message.Subject,
		Message: message.Message,
	})
}

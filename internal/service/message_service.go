package service

import (
	"context"
	"strings"
	"time"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageServiceImpl struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func CreateMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &MessageServiceImpl{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *MessageServiceImpl) SendMessage(ctx context.Context, callerID string, req dto.SendMessageRequest) (message domain.Message, err error) {
	if req.Sender != callerID {
		return message, errs.ErrNotLoggedIn
	}
	if strings.TrimSpace(req.Message) == "" {
		return message, errs.ErrClient
	}

	sender, err := primitive.ObjectIDFromHex(req.Sender)
	if err != nil {
		return message, errs.ErrClient
	}
	receiver, err := primitive.ObjectIDFromHex(req.Receiver)
	if err != nil {
		return message, errs.ErrClient
	}

	if _, err = s.userRepo.GetUserByID(ctx, receiver); err != nil {
		return
	}

	message = domain.Message{
		Sender:      sender,
		Receiver:    receiver,
		Message:     req.Message,
		MessageDate: time.Now(),
	}

	id, err := s.messageRepo.AddMessage(ctx, message)
	if err != nil {
		return
	}

	return s.messageRepo.GetMessageByID(ctx, id)
}

func (s *MessageServiceImpl) GetConversation(ctx context.Context, callerID string, req dto.ConversationRequest) (messages []domain.Message, err error) {
	if req.Sender != callerID {
		return nil, errs.ErrNotLoggedIn
	}

	sender, err := primitive.ObjectIDFromHex(req.Sender)
	if err != nil {
		return nil, errs.ErrClient
	}
	receiver, err := primitive.ObjectIDFromHex(req.Receiver)
	if err != nil {
		return nil, errs.ErrClient
	}

	return s.messageRepo.GetConversation(ctx, sender, receiver)
}

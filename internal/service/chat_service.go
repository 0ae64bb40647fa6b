package service

import (
	"context"
	"strings"
	"time"

	"ai-pdfchat-be/internal/constant"
	"ai-pdfchat-be/internal/dto"
	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/internal/repository/unitofwork"
	"ai-pdfchat-be/pkg/rag"
	"ai-pdfchat-be/pkg/rag/response"

	"github.com/google/uuid"
)

type IChatService interface {
	Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetConversation(ctx context.Context, conversationId uuid.UUID) (*dto.GetConversationResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	retriever  *rag.Retriever
	generator  *response.Generator
	topK       int
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *rag.Retriever,
	generator *response.Generator,
	topK int,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		retriever:  retriever,
		generator:  generator,
		topK:       topK,
		log:        log,
	}
}

// Send answers a question against the session's document. It never fails
// outward: any internal error degrades to an apology with a nil conversation
// id so the client always has something to render.
func (s *chatService) Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	res, err := s.send(ctx, req)
	if err != nil {
		s.log.Error("chat_service", "chat degraded to fallback response", map[string]interface{}{
			"session_id": req.SessionId.String(),
			"error":      err.Error(),
		})
		return &dto.SendChatResponse{
			Response:       response.MsgProcessingTrouble,
			ConversationId: nil,
			Context:        []string{},
		}, nil
	}
	return res, nil
}

func (s *chatService) send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	// An expired or unknown session still gets an answer, just without
	// document context.
	session, err := uow.SessionRepository().FindOne(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	if session != nil && session.IsExpired(now) {
		session = nil
	}

	var contexts []string
	if session != nil {
		scored, err := s.retriever.Retrieve(ctx, uow, req.Message, session.Id, s.topK)
		if err != nil {
			return nil, err
		}
		contexts = rag.Contents(scored)
	} else {
		contexts = []string{}
	}

	answer := s.generator.Answer(ctx, req.Message, strings.Join(contexts, constant.ContextSeparator))

	conversationId, err := s.persistExchange(ctx, uow, session, req, answer, now)
	if err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		Response:       answer,
		ConversationId: conversationId,
		Context:        contexts,
	}, nil
}

// persistExchange appends the question/answer pair to the conversation,
// creating one when the client did not present an id.
func (s *chatService) persistExchange(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.Session, req *dto.SendChatRequest, answer string, now time.Time) (*uuid.UUID, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var conversation *entity.Conversation
	if req.ConversationId != nil {
		existing, err := uow.ConversationRepository().FindOne(ctx, *req.ConversationId)
		if err != nil {
			return nil, err
		}
		conversation = existing
	}
	if conversation == nil {
		conversation = &entity.Conversation{
			Id:        uuid.New(),
			CreatedAt: now,
		}
		if session != nil {
			conversation.SessionId = &session.Id
		}
		if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	messages := []*entity.ConversationMessage{
		{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Role:           constant.ChatMessageRoleUser,
			Content:        req.Message,
			CreatedAt:      now,
		},
		{
			Id:             uuid.New(),
			ConversationId: conversation.Id,
			Role:           constant.ChatMessageRoleAssistant,
			Content:        answer,
			CreatedAt:      now,
		},
	}
	if err := uow.ConversationRepository().AppendMessages(ctx, messages); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &conversation.Id, nil
}

func (s *chatService) GetConversation(ctx context.Context, conversationId uuid.UUID) (*dto.GetConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil // Not found
	}

	messages, err := uow.ConversationRepository().FindMessages(ctx, conversation.Id)
	if err != nil {
		return nil, err
	}

	res := &dto.GetConversationResponse{
		Id:       conversation.Id,
		Messages: make([]dto.ConversationMessageDTO, 0, len(messages)),
	}
	for _, msg := range messages {
		res.Messages = append(res.Messages, dto.ConversationMessageDTO{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return res, nil
}

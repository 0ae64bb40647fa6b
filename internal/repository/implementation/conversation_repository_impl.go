package implementation

import (
	"context"
	"errors"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/mapper"
	"ai-pdfchat-be/internal/model"
	"ai-pdfchat-be/internal/repository/contract"
	"ai-pdfchat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	m := r.mapper.ToModel(conversation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var m model.Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConversationRepositoryImpl) AppendMessages(ctx context.Context, messages []*entity.ConversationMessage) error {
	if len(messages) == 0 {
		return nil
	}
	models := make([]*model.ConversationMessage, len(messages))
	for i, msg := range messages {
		models[i] = r.mapper.MessageToModel(msg)
	}
	return r.db.WithContext(ctx).Create(models).Error
}

func (r *ConversationRepositoryImpl) FindMessages(ctx context.Context, conversationId uuid.UUID) ([]*entity.ConversationMessage, error) {
	var models []*model.ConversationMessage
	query := specification.OrderBy{Field: "created_at", Desc: false}.Apply(
		r.db.WithContext(ctx).Where("conversation_id = ?", conversationId),
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *ConversationRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	subQuery := r.db.WithContext(ctx).Table("conversations").Select("id").Where("session_id = ?", sessionId)
	if err := r.db.WithContext(ctx).
		Where("conversation_id IN (?)", subQuery).
		Delete(&model.ConversationMessage{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Delete(&model.Conversation{}).Error
}

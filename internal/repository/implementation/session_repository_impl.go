package implementation

import (
	"context"
	"errors"
	"time"

	"ai-pdfchat-be/internal/entity"
	"ai-pdfchat-be/internal/mapper"
	"ai-pdfchat-be/internal/model"
	"ai-pdfchat-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.Session) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var m model.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRepositoryImpl) UpdateDocumentName(ctx context.Context, id uuid.UUID, documentName string) error {
	return r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("document_name", documentName).Error
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Session{}).Error
}

func (r *SessionRepositoryImpl) FindExpired(ctx context.Context, at time.Time) ([]*entity.Session, error) {
	var models []*model.Session
	if err := r.db.WithContext(ctx).Where("expires_at < ?", at).Find(&models).Error; err != nil {
		return nil, err
	}
	sessions := make([]*entity.Session, len(models))
	for i, m := range models {
		sessions[i] = r.mapper.ToEntity(m)
	}
	return sessions, nil
}

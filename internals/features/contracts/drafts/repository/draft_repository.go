// file: internals/features/contracts/drafts/repository/draft_repository.go
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ithra_backend/internals/features/contracts/drafts/model"
)

// DraftRepository adalah jembatan persistensi draft: setiap perubahan
// sub-objek form ditulis utuh (write-through) di bawah key tetap, dan
// bisa di-rehydrate saat form dibuka lagi. Diinjeksikan ke controller
// draft dan koordinator submit supaya test bisa pakai fake in-memory.
type DraftRepository interface {
	// Get mengembalikan nil tanpa error bila key belum pernah ditulis.
	Get(ctx context.Context, sessionID uuid.UUID, key string) (json.RawMessage, error)
	GetAll(ctx context.Context, sessionID uuid.UUID) (map[string]json.RawMessage, error)
	// Set menimpa nilai lama seutuhnya; tidak ada merge parsial.
	Set(ctx context.Context, sessionID uuid.UUID, key string, value json.RawMessage) error
	Clear(ctx context.Context, sessionID uuid.UUID, keys ...string) error
}

/* =======================
   GORM implementation
======================= */

type GormDraftRepository struct {
	DB *gorm.DB
}

func NewGormDraftRepository(db *gorm.DB) *GormDraftRepository {
	return &GormDraftRepository{DB: db}
}

func (r *GormDraftRepository) Get(ctx context.Context, sessionID uuid.UUID, key string) (json.RawMessage, error) {
	var ent model.ContractDraftModel
	err := r.DB.WithContext(ctx).
		Where("contract_draft_session_id = ? AND contract_draft_key = ?", sessionID, key).
		First(&ent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(ent.ContractDraftValue), nil
}

func (r *GormDraftRepository) GetAll(ctx context.Context, sessionID uuid.UUID) (map[string]json.RawMessage, error) {
	var ents []model.ContractDraftModel
	if err := r.DB.WithContext(ctx).
		Where("contract_draft_session_id = ?", sessionID).
		Find(&ents).Error; err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(ents))
	for _, ent := range ents {
		out[ent.ContractDraftKey] = json.RawMessage(ent.ContractDraftValue)
	}
	return out, nil
}

func (r *GormDraftRepository) Set(ctx context.Context, sessionID uuid.UUID, key string, value json.RawMessage) error {
	ent := model.ContractDraftModel{
		ContractDraftSessionID: sessionID,
		ContractDraftKey:       key,
		ContractDraftValue:     datatypes.JSON(value),
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "contract_draft_session_id"},
				{Name: "contract_draft_key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"contract_draft_value", "contract_draft_updated_at"}),
		}).
		Create(&ent).Error
}

func (r *GormDraftRepository) Clear(ctx context.Context, sessionID uuid.UUID, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Where("contract_draft_session_id = ? AND contract_draft_key IN ?", sessionID, keys).
		Delete(&model.ContractDraftModel{}).Error
}

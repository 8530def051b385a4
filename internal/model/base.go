package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 Repository가 호출자로부터 전달받은 actor로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"` // GORM이 자동 관리
	UpdatedAt time.Time `gorm:"column:updated_at;not null"` // GORM이 자동 관리
	CreatedBy *string   `gorm:"column:created_by;type:VARCHAR2(50)"`
	UpdatedBy *string   `gorm:"column:updated_by;type:VARCHAR2(50)"`
}

// StampCreated records actor as both creator and last modifier.
func (b *BaseEntity) StampCreated(actor string) {
	b.CreatedBy = actorPtr(actor)
	b.UpdatedBy = actorPtr(actor)
}

// StampUpdated records actor as the last modifier.
func (b *BaseEntity) StampUpdated(actor string) {
	b.UpdatedBy = actorPtr(actor)
}

func actorPtr(actor string) *string {
	if actor == "" {
		return nil
	}
	return &actor
}

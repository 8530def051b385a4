package member

import (
	"context"
	"errors"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/model"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/pagination"
	"gorm.io/gorm"
)

// Repository persists members. db is either the root handle or a transaction.
// Business rules live in MemberService; the unique indexes on username and email
// are the only rules enforced here.
type Repository interface {
	// FindByUsername returns nil when no member has the username
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.Member, error)
	// FindByEmail returns nil when no member has the email
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error)
	ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error)
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
	Create(ctx context.Context, db *gorm.DB, member *model.Member, actor string) error
	Update(ctx context.Context, db *gorm.DB, member *model.Member, actor string) error
	// FindAll returns one page ordered by id and the total number of members
	FindAll(ctx context.Context, db *gorm.DB, req pagination.Request) ([]model.Member, int64, error)
}

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

var _ Repository = (*MemberRepository)(nil)

func (m *MemberRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.Member, error) {
	return m.findOne(ctx, db, "username = ?", username)
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	return m.findOne(ctx, db, "email = ?", email)
}

func (m *MemberRepository) findOne(ctx context.Context, db *gorm.DB, query string, arg string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where(query, arg).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return m.exists(ctx, db, "username = ?", username)
}

func (m *MemberRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	return m.exists(ctx, db, "email = ?", email)
}

func (m *MemberRepository) exists(ctx context.Context, db *gorm.DB, query string, arg string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where(query, arg).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create inserts member and stamps actor as creator
func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member, actor string) error {
	member.StampCreated(actor)
	return db.WithContext(ctx).Create(member).Error
}

// Update writes every column of member, zero values included, and stamps actor as modifier
func (m *MemberRepository) Update(ctx context.Context, db *gorm.DB, member *model.Member, actor string) error {
	member.StampUpdated(actor)
	return db.WithContext(ctx).Save(member).Error
}

func (m *MemberRepository) FindAll(ctx context.Context, db *gorm.DB, req pagination.Request) ([]model.Member, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.Member
	err := db.WithContext(ctx).
		Order("id ASC").
		Offset(req.Offset()).
		Limit(req.Limit()).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

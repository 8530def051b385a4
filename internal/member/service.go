package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/model"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/cache"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/database"
	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/password"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository Repository
	hasher           password.Hasher
	existence        *existenceCache
}

// NewMemberService wires the member service. c may be nil to run without the existence cache.
func NewMemberService(db *gorm.DB, memberRepository Repository, hasher password.Hasher, c cache.Cache) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		hasher:           hasher,
		existence:        newExistenceCache(c),
	}
}

// Register creates a member and returns its id. actor is recorded as creator.
func (s *MemberService) Register(ctx context.Context, actor string, request *SignupRequest) (uint32, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(request.Username) == "" {
		return 0, fmt.Errorf("register: %w", ErrUsernameRequired)
	}
	if request.Password == "" || request.Password != request.PasswordConfirm {
		log.Warn("회원 가입 실패 - 비밀번호 불일치", "username", logger.MaskUsername(request.Username))
		return 0, fmt.Errorf("register: %w", ErrPasswordMismatch)
	}

	var memberID uint32
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkAvailable(ctx, tx, request.Username, request.Email); err != nil {
			return err
		}

		hashedPassword, err := s.hasher.Hash(request.Password)
		if err != nil {
			log.Error("비밀번호 암호화 실패", "error", err)
			return err
		}

		member := model.NewMember(request.Username, hashedPassword, request.profile())
		if err := s.memberRepository.Create(ctx, tx, member, actor); err != nil {
			return fmt.Errorf("create member: %w", err)
		}

		memberID = member.ID
		return nil
	})

	if err != nil {
		if lostRace(err) {
			return 0, s.resolveConflict(ctx, request.Username)
		}
		if !sharedError.IsKind(err, sharedError.KindConflict) {
			log.Error("회원 가입 실패", "username", logger.MaskUsername(request.Username), "error", err)
		}
		return 0, err
	}

	s.existence.markUsername(ctx, request.Username)

	log.Info("회원 가입 완료", "member_id", memberID, "username", logger.MaskUsername(request.Username))
	return memberID, nil
}

func (s *MemberService) checkAvailable(ctx context.Context, tx *gorm.DB, username, email string) error {
	log := logger.FromContext(ctx)

	exists, err := s.memberRepository.ExistsByUsername(ctx, tx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		log.Warn("이미 존재하는 아이디", "username", logger.MaskUsername(username))
		return fmt.Errorf("register: %w", ErrDuplicateUsername)
	}

	exists, err = s.memberRepository.ExistsByEmail(ctx, tx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		log.Warn("이미 존재하는 이메일", "email", logger.MaskEmail(email))
		return fmt.Errorf("register: %w", ErrDuplicateEmail)
	}

	return nil
}

// lostRace reports a unique index rejection that slipped past the pre-checks
func lostRace(err error) bool {
	return sharedError.KindOf(err) == sharedError.KindUnknown && database.IsUniqueViolation(err)
}

// resolveConflict runs after the failed transaction ended and finds which key the winner took
func (s *MemberService) resolveConflict(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	existing, err := s.memberRepository.FindByUsername(ctx, s.db, username)
	if err != nil {
		return fmt.Errorf("resolve unique violation: %w", err)
	}
	if existing != nil {
		log.Warn("동시 가입 충돌 - 아이디", "username", logger.MaskUsername(username))
		return fmt.Errorf("unique violation: %w", ErrDuplicateUsername)
	}

	log.Warn("동시 가입 충돌 - 이메일", "username", logger.MaskUsername(username))
	return fmt.Errorf("unique violation: %w", ErrDuplicateEmail)
}

// UpdateProfile overwrites the profile of username. An empty password keeps the current hash.
func (s *MemberService) UpdateProfile(ctx context.Context, actor, username string, request *UpdateProfileRequest) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByUsername(ctx, tx, username)
		if err != nil {
			return fmt.Errorf("find member: %w", err)
		}
		if member == nil {
			log.Error("인증된 회원이 존재하지 않습니다", "username", logger.MaskUsername(username))
			return fmt.Errorf("update profile: %w", ErrMemberNotFound)
		}

		if request.Password != "" && request.Password != request.PasswordConfirm {
			log.Warn("회원 정보 수정 실패 - 비밀번호 불일치", "username", logger.MaskUsername(username))
			return fmt.Errorf("update profile: %w", ErrPasswordMismatch)
		}

		member.ApplyProfile(request.profile())

		if request.Password != "" {
			hashedPassword, err := s.hasher.Hash(request.Password)
			if err != nil {
				log.Error("비밀번호 암호화 실패", "error", err)
				return err
			}
			member.Password = hashedPassword
		}

		if err := s.memberRepository.Update(ctx, tx, member, actor); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		return nil
	})

	if err != nil {
		// username cannot change, so only the email index can reject the update
		if lostRace(err) {
			log.Warn("회원 정보 수정 실패 - 이메일 중복", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("update profile: %w", ErrDuplicateEmail)
		}
		return err
	}

	log.Info("회원 정보 수정 완료", "username", logger.MaskUsername(username))
	return nil
}

func (s *MemberService) IsUsernameExists(ctx context.Context, username string) (bool, error) {
	if s.existence.hasUsername(ctx, username) {
		return true, nil
	}

	exists, err := s.memberRepository.ExistsByUsername(ctx, s.db, username)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}

	if exists {
		s.existence.markUsername(ctx, username)
	}
	return exists, nil
}

func (s *MemberService) IsEmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.memberRepository.ExistsByEmail(ctx, s.db, email)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// FindMembers returns one zero-based page ordered by id.
// A page past the end is empty rather than an error.
func (s *MemberService) FindMembers(ctx context.Context, page, pageSize int) (*pagination.Page[model.Member], error) {
	req := pagination.Request{Page: page, Size: pageSize}
	if !req.Valid() {
		return nil, fmt.Errorf("find members page=%d size=%d: %w", page, pageSize, ErrInvalidPage)
	}

	var result *pagination.Page[model.Member]
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		members, total, err := s.memberRepository.FindAll(ctx, tx, req)
		if err != nil {
			return fmt.Errorf("find members: %w", err)
		}

		result = pagination.NewPage(members, req, total)
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *MemberService) FindByUsername(ctx context.Context, username string) (*model.Member, error) {
	member, err := s.memberRepository.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("find member: %w", ErrMemberNotFound)
	}
	return member, nil
}

func (s *MemberService) GetProfile(ctx context.Context, username string) (*ProfileResponse, error) {
	member, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return newProfileResponse(member), nil
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/member"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/password"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/token"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository member.Repository
	hasher           password.Hasher
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository member.Repository, hasher password.Hasher, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		hasher:           hasher,
		tokenManager:     tokenManager,
	}
}

// Login issues tokens for username. Unknown usernames and wrong passwords fail the same way.
func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find member by username
	m, err := a.memberRepository.FindByUsername(ctx, a.db, request.Username)
	if err != nil {
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}
	if m == nil {
		log.Warn("로그인 실패 - 존재하지 않는 아이디", "username", logger.MaskUsername(request.Username))
		return nil, fmt.Errorf("login: %w", ErrIncorrectUsernamePassword)
	}

	// 2. Validate password
	if err := a.hasher.Compare(m.Password, request.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			log.Error("비밀번호 비교 실패", "error", err)
			return nil, err
		}
		log.Warn("로그인 실패 - 비밀번호 불일치", "username", logger.MaskUsername(request.Username))
		return nil, fmt.Errorf("login: %w", ErrIncorrectUsernamePassword)
	}

	// 3. Generate JWT tokens
	accessToken, err := a.tokenManager.GenerateAccessToken(m.Username)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(m.Username)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "username", logger.MaskUsername(request.Username))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"bible_read_keep/internal/config"
	"bible_read_keep/internal/model"
	repomocks "bible_read_keep/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiresHours = 72
	return cfg
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()

	validReq := &model.RegisterRequest{
		Name:     "홍길동",
		Email:    "hong@example.com",
		Password: "password1234",
	}

	tests := []struct {
		name      string
		req       *model.RegisterRequest
		setupMock func(userRepo *repomocks.UserRepository)
		wantErr   error
	}{
		{
			name: "정상계: 신규 가입",
			req:  validReq,
			setupMock: func(userRepo *repomocks.UserRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), validReq.Email).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(2).(*model.User)
						assert.Equal(t, validReq.Name, user.Name)
						assert.Equal(t, validReq.Email, user.Email)
						assert.NotEqual(t, uuid.Nil, user.UserID)
						// 평문이 아니라 bcrypt 해시가 저장되어야 함
						assert.NoError(t, bcrypt.CompareHashAndPassword(
							[]byte(user.PasswordHash), []byte(validReq.Password)))
					}).Return(nil).Once()
			},
		},
		{
			name: "이상계: 이메일 중복",
			req:  validReq,
			setupMock: func(userRepo *repomocks.UserRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), validReq.Email).
					Return(&model.User{Email: validReq.Email}, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "이상계: 생성 시점의 중복 충돌",
			req:  validReq,
			setupMock: func(userRepo *repomocks.UserRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), validReq.Email).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(repomocks.UserRepository)
			tt.setupMock(userRepo)

			svc := NewAuthService(db, userRepo, testConfig())
			got, err := svc.Register(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.req.Email, got.Email)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	cfg := testConfig()

	userID := uuid.New()
	password := "password1234"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	storedUser := &model.User{
		UserID:       userID,
		Email:        "hong@example.com",
		PasswordHash: string(hash),
	}

	t.Run("정상계: 로그인 성공 시 유효한 토큰 발급", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), storedUser.Email).
			Return(storedUser, nil).Once()

		svc := NewAuthService(db, userRepo, cfg)
		got, err := svc.Login(ctx, &model.LoginRequest{Email: storedUser.Email, Password: password})
		require.NoError(t, err)
		require.NotEmpty(t, got.AccessToken)

		// 발급된 토큰이 같은 시크릿으로 검증되고 sub 가 사용자 ID 여야 함
		token, err := jwt.Parse(got.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		subject, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, userID.String(), subject)
		userRepo.AssertExpectations(t)
	})

	t.Run("이상계: 비밀번호 불일치", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), storedUser.Email).
			Return(storedUser, nil).Once()

		svc := NewAuthService(db, userRepo, cfg)
		_, err := svc.Login(ctx, &model.LoginRequest{Email: storedUser.Email, Password: "wrong-password"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("이상계: 존재하지 않는 사용자도 같은 에러", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "none@example.com").
			Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, userRepo, cfg)
		_, err := svc.Login(ctx, &model.LoginRequest{Email: "none@example.com", Password: password})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_authService_GetUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	userID := uuid.New()

	t.Run("정상계", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.User{UserID: userID, Name: "홍길동"}, nil).Once()

		svc := NewAuthService(db, userRepo, testConfig())
		got, err := svc.GetUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "홍길동", got.Name)
	})

	t.Run("이상계: 사용자 없음", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, userRepo, testConfig())
		_, err := svc.GetUser(ctx, userID)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("이상계: DB 오류", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, errors.New("db down")).Once()

		svc := NewAuthService(db, userRepo, testConfig())
		_, err := svc.GetUser(ctx, userID)
		assert.Error(t, err)
	})
}

package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JorgeJ97/task-management-backend/domain/dto"
	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
	"github.com/JorgeJ97/task-management-backend/domain/services"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	tokenOpts utils.TokenOptions
}

func NewUserService(userRepo repositories.UserRepository, tokenOpts utils.TokenOptions) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		tokenOpts: tokenOpts,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check existing email", "error", err)
		return "", nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return "", nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		LastName: req.LastName,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			logger.WarnContext(ctx, "Email already exists", "email", email)
			return "", nil, ErrEmailExists
		}
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return "", nil, err
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID)
	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load user for login", "error", err)
		return "", nil, err
	}
	if user == nil {
		logger.WarnContext(ctx, "Login failed - email not found")
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

// GetProfile - id ที่ไม่ใช่ uuid (เช่น sub ของ Auth0) ถือว่าไม่พบ
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get profile", "error", err)
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	return utils.GenerateToken(user.ID.String(), user.Email, s.tokenOpts)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

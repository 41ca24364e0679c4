package services

import (
	"context"

	"github.com/JorgeJ97/task-management-backend/domain/dto"
	"github.com/JorgeJ97/task-management-backend/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	GenerateJWT(user *models.User) (string, error)
}

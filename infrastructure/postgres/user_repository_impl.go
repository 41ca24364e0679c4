package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JorgeJ97/task-management-backend/domain/models"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create - unique index ของ email เป็นตัวตัดสินสุดท้ายเมื่อ register พร้อมกัน
func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return translateCreateError(r.db.WithContext(ctx).Create(user).Error)
}

// translateCreateError ต้องเปิด TranslateError ใน gorm.Config
func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repositories.ErrDuplicateEmail
	}
	return err
}

// GetByID - ไม่พบคืน (nil, nil)
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	return userOrNil(&user, err)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	return userOrNil(&user, err)
}

func userOrNil(user *models.User, err error) (*models.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

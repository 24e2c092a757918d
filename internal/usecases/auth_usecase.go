package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agrobot/internal/entities"
	"agrobot/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
}

func NewAuthUsecase(repo *repository.UserRepository, secret string) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  repo,
		jwtSecret: []byte(secret),
	}
}

func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// EnsureAdmin creates the admin user if it does not exist (called on startup).
func (uc *AuthUsecase) EnsureAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return errors.New("admin password not configured")
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &entities.User{
			Username:     username,
			PasswordHash: string(hashed),
			Role:         "admin",
		}
		return uc.userRepo.Create(ctx, admin)
	}
	return nil
}

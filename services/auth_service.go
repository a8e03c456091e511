package services

import (
	"errors"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"
	"github.com/ahmad-zhafir/ReFeed-sub001/utils"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email is already registered")

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates an account without a role; the role is chosen once in the
// onboarding flow afterwards.
func (s *AuthService) Register(email, password, fullName, contact string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Contact:  contact,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and mints a session token.
func (s *AuthService) Authenticate(email, password string) (string, *models.User, error) {
	var user models.User
	result := s.db.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

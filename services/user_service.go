package services

import (
	"errors"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRole         = errors.New("role must be generator or farmer")
	ErrRoleAlreadyAssigned = errors.New("role has already been assigned")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	FullName       string   `json:"full_name"`
	Contact        string   `json:"contact"`
	HomeAddress    string   `json:"home_address"`
	HomeLat        *float64 `json:"home_lat"`
	HomeLng        *float64 `json:"home_lng"`
	SearchRadiusKm float64  `json:"search_radius_km"`
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", id, false).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":               user.ID,
		"email":            user.Email,
		"full_name":        user.FullName,
		"contact":          user.Contact,
		"role":             user.Role,
		"home_address":     user.HomeAddress,
		"home_lat":         user.HomeLat,
		"home_lng":         user.HomeLng,
		"search_radius_km": user.SearchRadiusKm,
		"avg_rating":       user.AvgRating,
		"rating_count":     user.RatingCount,
	}, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	user, err := s.FindByID(userID)
	if err != nil {
		return err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Contact != "" {
		user.Contact = input.Contact
	}
	if input.HomeAddress != "" {
		user.HomeAddress = input.HomeAddress
	}
	if input.HomeLat != nil && input.HomeLng != nil {
		user.HomeLat = input.HomeLat
		user.HomeLng = input.HomeLng
	}
	if input.SearchRadiusKm > 0 {
		user.SearchRadiusKm = input.SearchRadiusKm
	}

	return s.db.Save(user).Error
}

// AssignRole records the one-time role choice. The conditional update only
// matches a row whose role is still empty, so two concurrent onboarding tabs
// cannot both win; the loser gets ErrRoleAlreadyAssigned and the stored role
// stays as it was.
func (s *UserService) AssignRole(userID uint, role string) error {
	if role != models.RoleGenerator && role != models.RoleFarmer {
		return ErrInvalidRole
	}

	result := s.db.Model(&models.User{}).
		Where("id = ? AND role = ''", userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := s.FindByID(userID); err != nil {
			return err
		}
		return ErrRoleAlreadyAssigned
	}
	return nil
}

func (s *UserService) DeleteUser(userID uint) error {
	user, err := s.FindByID(userID)
	if err != nil {
		return err
	}
	user.Disabled = true
	return s.db.Save(user).Error
}

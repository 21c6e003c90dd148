package repositories

import (
	"strings"

	"gorm.io/gorm"

	"friendlink-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether an account already claims
// either identifier.
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByIDs(ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	if err := r.db.Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindCandidates returns up to limit users, in id order, excluding the
// given ids. Used by the recommendation random fill.
func (r *UserRepository) FindCandidates(excludeIDs []string, limit int) ([]models.User, error) {
	if limit <= 0 {
		return []models.User{}, nil
	}

	query := r.db.Order("id").Limit(limit)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SearchByUsername matches usernames containing the query,
// case-insensitively, excluding the searching user.
func (r *UserRepository) SearchByUsername(query, excludeID string, limit int) ([]models.User, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	err := r.db.
		Where("LOWER(username) LIKE ?", pattern).
		Where("id != ?", excludeID).
		Order("id").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

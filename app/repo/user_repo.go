package repo

import (
	"strings"

	"death-registry/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) CountByName(name string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("name = ?", name).Count(&count).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	return users, r.db.Order("id ASC").Find(&users).Error
}

// Search matches a case-insensitive substring against name or email.
func (r *UserRepository) Search(q string) ([]models.User, error) {
	var users []models.User
	like := "%" + strings.ToLower(q) + "%"
	err := r.db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

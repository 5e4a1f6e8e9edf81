package services

import (
	"errors"

	"food-express/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService owns every query against the users table. The gorm handle is
// injected so tests can run against their own database.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserUpdate lists the fields a partial update may touch. Nil means "leave
// the column alone".
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.UserRole
}

// All returns every user. Password hashes never leave the model's JSON
// representation, so rows are safe to return as-is.
func (s *UserService) All() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a user. The plaintext password is bcrypt-hashed before it
// touches the store; an empty role defaults to "user". A duplicate email
// yields ErrConflict.
func (s *UserService) Create(name, email, password string, role models.UserRole) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isConstraintViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

// Verify checks credentials. An unknown email or a wrong password both
// return (nil, nil) — only a store failure is an error, so callers cannot
// distinguish which half of the credential was wrong.
func (s *UserService) Verify(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return &user, nil
}

// Update patches only the supplied fields and reports how many rows changed.
// A password, if present, is re-hashed. An empty update returns 0 without
// touching the store.
func (s *UserService) Update(id uint, in UserUpdate) (int64, error) {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		fields["password"] = string(hash)
	}
	if in.Role != nil {
		fields["role"] = *in.Role
	}
	if len(fields) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if isConstraintViolation(res.Error) {
			return 0, ErrConflict
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *UserService) DeleteByID(id uint) (int64, error) {
	res := s.db.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (s *UserService) DeleteAll() (int64, error) {
	res := s.db.Where("1 = 1").Delete(&models.User{})
	return res.RowsAffected, res.Error
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Govind-619/SkillSphere/models"
	"github.com/Govind-619/SkillSphere/utils"
	"gorm.io/gorm"
)

// RegisterInput is the sign-up payload
type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	UserID   uint        `json:"userId"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates a student account after validating every field
func RegisterUser(ctx context.Context, db *gorm.DB, in RegisterInput) (*models.User, error) {
	if utils.Blank(in.Username, in.Name, in.Email, in.Password) {
		return nil, utils.ValidationErr(utils.ErrRequiredFields, nil)
	}
	email := normalizeEmail(in.Email)
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, utils.ValidationErr(msg, nil)
	}

	db = db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, utils.InternalError("Failed to check email", err)
	}
	if count > 0 {
		return nil, utils.ValidationErr(utils.ErrEmailExists, ErrEmailTaken)
	}

	if ok, msg := utils.ValidatePassword(in.Password); !ok {
		return nil, utils.ValidationErr(msg, nil)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.InternalError("Failed to hash password", err)
	}

	user := models.User{
		Username: strings.TrimSpace(in.Username),
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hash,
		Role:     models.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ValidationErr(utils.ErrEmailExists, ErrEmailTaken)
		}
		return nil, utils.InternalError("Failed to create user", err)
	}

	utils.LogInfo("Registered user %d (%s)", user.ID, user.Email)
	return &user, nil
}

// Login verifies credentials and issues an access token
func Login(ctx context.Context, db *gorm.DB, email, password string) (*LoginResult, error) {
	if utils.Blank(email, password) {
		return nil, utils.ValidationErr("Validation error: email and password are required.", nil)
	}
	email = normalizeEmail(email)
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, utils.ValidationErr(msg, nil)
	}

	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Login attempt failed - User not found: %s", email)
			return nil, utils.UnauthorizedError(utils.ErrInvalidCredentials, ErrBadCredentials)
		}
		return nil, utils.InternalError("Failed to load user", err)
	}
	if !utils.CheckPassword(password, user.Password) {
		utils.LogError("Login attempt failed - Invalid password for user: %s", email)
		return nil, utils.UnauthorizedError(utils.ErrInvalidCredentials, ErrBadCredentials)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return nil, utils.InternalError("Failed to generate token", err)
	}

	utils.LogInfo("User %d logged in", user.ID)
	return &LoginResult{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	}, nil
}

// EnsureAdmin creates an admin account for email unless a user already owns it.
// It reports whether an account was created.
func EnsureAdmin(ctx context.Context, db *gorm.DB, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}

	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin() {
			utils.LogError("Seed admin email %s belongs to a %s account", email, existing.Role)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	username := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		username = email[:at]
	}
	admin := models.User{
		Name:     "Administrator",
		Username: username,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, err
	}
	utils.LogInfo("Created admin account %s", email)
	return true, nil
}

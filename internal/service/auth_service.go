package service

import (
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"beautybooking/internal/auth"
	"beautybooking/internal/db"
	"beautybooking/internal/entities"
	"beautybooking/internal/errors"
	"beautybooking/internal/repository"
	"beautybooking/internal/utils"
)

type AuthService interface {
	Register(req entities.RegisterRequest) (*entities.AuthResponse, error)
	Login(req entities.LoginRequest) (*entities.AuthResponse, error)
	GetProfile(userID uuid.UUID) (*entities.UserResponse, error)
	UpdateProfile(userID uuid.UUID, name, phone *string) (*entities.UserResponse, error)
	ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

type authService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) issueToken(user *db.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.Unavailable("authentication is not configured")
	}
	return auth.CreateToken(user.ID, user.Role, secret, auth.TokenTTL())
}

func (s *authService) Register(req entities.RegisterRequest) (*entities.AuthResponse, error) {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, errors.BadRequest(err.Error())
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, errors.BadRequest(err.Error())
	}
	if err := utils.ValidateName(req.Name); err != nil {
		return nil, errors.BadRequest(err.Error())
	}
	if err := utils.ValidatePhone(req.Phone); err != nil {
		return nil, errors.BadRequest(err.Error())
	}

	existing, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &db.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         "client",
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("New account registered: %s", user.Email)
	return &entities.AuthResponse{
		Message:     "account created",
		AccessToken: token,
		User:        entities.UserResponseFrom(*user),
	}, nil
}

func (s *authService) Login(req entities.LoginRequest) (*entities.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.Unauthorized("invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Message:     "login successful",
		AccessToken: token,
		User:        entities.UserResponseFrom(*user),
	}, nil
}

func (s *authService) GetProfile(userID uuid.UUID) (*entities.UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("user not found")
	}
	resp := entities.UserResponseFrom(*user)
	return &resp, nil
}

func (s *authService) UpdateProfile(userID uuid.UUID, name, phone *string) (*entities.UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("user not found")
	}

	if name != nil {
		if err := utils.ValidateName(*name); err != nil {
			return nil, errors.BadRequest(err.Error())
		}
		user.Name = *name
	}
	if phone != nil {
		if err := utils.ValidatePhone(*phone); err != nil {
			return nil, errors.BadRequest(err.Error())
		}
		user.Phone = *phone
	}

	if err := s.users.UpdateProfile(user.ID, user.Name, user.Phone); err != nil {
		return nil, err
	}
	resp := entities.UserResponseFrom(*user)
	return &resp, nil
}

func (s *authService) ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NotFound("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.Unauthorized("current password is incorrect")
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return errors.BadRequest(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(user.ID, string(hash))
}

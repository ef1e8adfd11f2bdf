package usecase

import (
	"time"

	"ecofinds/model"
	"ecofinds/pkg/auth"
)

const startingEcoPoints = 100

type UserRepository interface {
	Insert(user *model.User, passwordHash string) error
	GetByID(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, string, error)
}

type tokenIssuer interface {
	Issue(userID string) (string, error)
}

type UserUsecase struct {
	repo   UserRepository
	tokens tokenIssuer
}

func NewUserUsecase(repo UserRepository, tokens tokenIssuer) *UserUsecase {
	return &UserUsecase{repo: repo, tokens: tokens}
}

// Register creates a user with the starting eco-point balance and returns
// an access token for it.
func (u *UserUsecase) Register(email, username, fullName, password string) (string, *model.User, error) {
	existing, _, err := u.repo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		ID:        newID(),
		Email:     email,
		Username:  username,
		FullName:  fullName,
		EcoPoints: startingEcoPoints,
		CreatedAt: time.Now(),
	}
	if err := u.repo.Insert(user, hash); err != nil {
		return "", nil, err
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

func (u *UserUsecase) Login(email, password string) (string, *model.User, error) {
	user, hash, err := u.repo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !auth.CheckPassword(password, hash) {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

func (u *UserUsecase) GetUser(id string) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

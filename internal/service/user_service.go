package service

import (
	"errors"

	"filmpeek/internal/repository"
	"filmpeek/model"
	"filmpeek/util"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Signup(name string, email string, password string) (*model.User, error)
	Signin(email string, password string) (string, error)
	GetProfile(userId string) (*model.UserProfileRes, error)
	AddFavorite(userId string, movieId int64) error
	RemoveFavorite(userId string, movieId int64) error
	GetFavorites(userId string) ([]int64, error)
	CreateWatchlist(userId string, name string) (*model.Watchlist, error)
	AddMovieToWatchlist(userId string, watchlistId string, movieId int64) error
	RemoveMovieFromWatchlist(userId string, watchlistId string, movieId int64) error
	DeleteWatchlist(userId string, watchlistId string) error
	GetWatchlist(userId string, watchlistId string) (*model.Watchlist, error)
	GetWatchlists(userId string) ([]model.Watchlist, error)
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Signup(name string, email string, password string) (*model.User, error) {
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}

	// lookup-before-insert, email uniqueness is not a store constraint
	_, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.userRepo.CreateUser(name, email, string(hashed))
}

func (s *UserService) Signin(email string, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return "", ErrWrongPassword
	}

	return util.CreateJwtToken(user.ID.Hex())
}

func (s *UserService) GetProfile(userId string) (*model.UserProfileRes, error) {
	user, err := s.userRepo.FindById(userId)
	if err != nil {
		return nil, err
	}
	return &model.UserProfileRes{
		Name:           user.Name,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}, nil
}

//------------------------------------------
//------------------------------------------

func (s *UserService) AddFavorite(userId string, movieId int64) error {
	return s.userRepo.AddFavorite(userId, movieId)
}

func (s *UserService) RemoveFavorite(userId string, movieId int64) error {
	return s.userRepo.RemoveFavorite(userId, movieId)
}

func (s *UserService) GetFavorites(userId string) ([]int64, error) {
	return s.userRepo.GetFavorites(userId)
}

//------------------------------------------
//------------------------------------------

func (s *UserService) CreateWatchlist(userId string, name string) (*model.Watchlist, error) {
	return s.userRepo.CreateWatchlist(userId, name)
}

func (s *UserService) AddMovieToWatchlist(userId string, watchlistId string, movieId int64) error {
	return s.userRepo.AddMovieToWatchlist(userId, watchlistId, movieId)
}

func (s *UserService) RemoveMovieFromWatchlist(userId string, watchlistId string, movieId int64) error {
	return s.userRepo.RemoveMovieFromWatchlist(userId, watchlistId, movieId)
}

func (s *UserService) DeleteWatchlist(userId string, watchlistId string) error {
	return s.userRepo.DeleteWatchlist(userId, watchlistId)
}

func (s *UserService) GetWatchlist(userId string, watchlistId string) (*model.Watchlist, error) {
	return s.userRepo.GetWatchlist(userId, watchlistId)
}

func (s *UserService) GetWatchlists(userId string) ([]model.Watchlist, error) {
	return s.userRepo.GetWatchlists(userId)
}

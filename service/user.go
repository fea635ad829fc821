package service

import (
	"errors"
	"net/http"

	"github.com/Alphiii2005/alphabot-live/model"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Mailer *Mailer
}

func NewUserService(mailer *Mailer) *UserService {
	return &UserService{Mailer: mailer}
}

type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

func (service *UserService) Register(user *User) error {

	if model.UserExists(user.Username, user.Email) {
		return errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("internal server error")
	}

	newUser := &model.User{
		Username: user.Username,
		Email:    user.Email,
		Password: string(hashedPassword),
	}
	if err := model.CreateUser(newUser); err != nil {
		return errors.New("internal server error")
	}

	// best effort, never blocks registration
	if service.Mailer != nil {
		go service.Mailer.SendWelcome(newUser.Email, newUser.Username)
	}
	return nil
}

func (service *UserService) Login(user *User) (string, error) {
	registeredUser, err := model.GetUserByUsername(user.Username)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(registeredUser.Password), []byte(user.Password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	ts := &TokenService{}
	token, err := ts.CreateToken(registeredUser.ID, registeredUser.Username)
	if err != nil {
		logger.Warnf("Error generating token: %v", err)
		return "", errors.New("failed to generate token")
	}

	return token.AccessToken, nil
}

func (service *UserService) Logout(r *http.Request) error {
	ts := &TokenService{}
	return ts.RevokeToken(r)
}

func (service *UserService) Profile(userID uint) (*ProfileView, error) {
	user, err := model.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	view := &ProfileView{Username: user.Username, Email: user.Email}

	profile, err := model.GetProfile(userID)
	if err == nil {
		view.Bio = profile.Bio
		view.Avatar = profile.Avatar
	}
	return view, nil
}

func (service *UserService) UpdateProfile(userID uint, bio, avatar *string) error {
	fields := map[string]interface{}{}
	if bio != nil {
		fields["bio"] = *bio
	}
	if avatar != nil {
		fields["avatar"] = *avatar
	}
	if len(fields) == 0 {
		return nil
	}
	return model.UpdateProfile(userID, fields)
}

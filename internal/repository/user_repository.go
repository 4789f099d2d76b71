package repository

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"music-storefront/internal/domain"
	"music-storefront/internal/shopapi"
)

type UserRepository interface {
	Login(ctx context.Context, email, password string) (*domain.AccessToken, error)
	Register(ctx context.Context, input domain.RegisterInput) (*domain.AccessToken, error)
	GetProfile(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, input domain.UpdateProfileInput) error
	DeleteProfile(ctx context.Context, token string) error
	UploadAvatar(ctx context.Context, token, filename string, content io.Reader) error
	GetAvatar(ctx context.Context, userID domain.ID) (*shopapi.Blob, error)
}

type userRepository struct {
	api *shopapi.Client
}

func NewUserRepository(api *shopapi.Client) UserRepository {
	return &userRepository{api: api}
}

// Login uses the OAuth2 password form the shop API expects; the e-mail goes
// in the username field.
func (r *userRepository) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token domain.AccessToken
	if err := r.api.PostForm(ctx, "login", form, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, &shopapi.DecodeError{Method: "POST", Path: "login", Err: fmt.Errorf("missing access_token")}
	}
	return &token, nil
}

func (r *userRepository) Register(ctx context.Context, input domain.RegisterInput) (*domain.AccessToken, error) {
	var token domain.AccessToken
	if err := r.api.Post(ctx, "register", input, "", &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, &shopapi.DecodeError{Method: "POST", Path: "register", Err: fmt.Errorf("missing access_token")}
	}
	return &token, nil
}

func (r *userRepository) GetProfile(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := r.api.Get(ctx, "login/profile", nil, token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, token string, input domain.UpdateProfileInput) error {
	return r.api.Patch(ctx, "login/profile", input, token, nil)
}

func (r *userRepository) DeleteProfile(ctx context.Context, token string) error {
	return r.api.Delete(ctx, "login/profile", token, nil)
}

func (r *userRepository) UploadAvatar(ctx context.Context, token, filename string, content io.Reader) error {
	return r.api.PostFile(ctx, "login/profile/avatar", "file", filename, content, token, nil)
}

func (r *userRepository) GetAvatar(ctx context.Context, userID domain.ID) (*shopapi.Blob, error) {
	return r.api.GetBlob(ctx, fmt.Sprintf("login/profile/avatar/%s", userID))
}

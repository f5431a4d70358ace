package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// Login implements AuthAPI.Login using the OAuth2 password form
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}

	var out domain.Token
	if err := c.postForm(ctx, "/login/access-token", form, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("server returned an empty access token")
	}
	return &out, nil
}

// Register implements AuthAPI.Register
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var out userDTO
	in := registerDTO{Email: reg.Email, Name: reg.Name, Password: reg.Password}
	if err := c.postJSON(ctx, "/register", in, &out); err != nil {
		return nil, err
	}
	return toUser(out)
}

// Me implements AuthAPI.Me
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out userDTO
	if err := c.get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return toUser(out)
}

func toUser(d userDTO) (*domain.User, error) {
	u, err := userDTOToDomain(d)
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return &u, nil
}

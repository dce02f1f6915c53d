package timebank

import (
	"context"
	"net/http"

	"timebank/internal/domain"
)

type RegisterRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Password2 string   `json:"password2"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zip_code"`
	Bio       string   `json:"bio,omitempty"`
	Skills    string   `json:"skills,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// AuthResponse is returned by Register and Login: the backend token plus the
// member's profile.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type ProfileUpdate struct {
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Skills    *string   `json:"skills,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
	Street    *string   `json:"street,omitempty"`
	City      *string   `json:"city,omitempty"`
	State     *string   `json:"state,omitempty"`
	ZipCode   *string   `json:"zip_code,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/accounts/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/accounts/login/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the token server-side. A failed logout is not fatal to
// ending the local session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/accounts/logout/", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/accounts/profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, patch ProfileUpdate) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPatch, "/accounts/profile/", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package auth

import (
	"context"

	"timebank/internal/domain"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
	"timebank/internal/validation"
)

// Service turns login/registration forms into backend calls and sessions.
// All credential checking happens upstream; this layer only runs the
// client-side form validation and wraps the returned token.
type Service struct {
	api      API
	authed   Authed
	sessions *session.Manager
}

func NewService(api API, authed Authed, sessions *session.Manager) *Service {
	return &Service{api: api, authed: authed, sessions: sessions}
}

type SessionResult struct {
	Cookie string
	User   domain.User
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResult, error) {
	result := validation.ValidateRegistration(validation.RegistrationData{
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	})
	if !result.Valid {
		return nil, &FormError{Errors: result.Errors}
	}

	res, err := s.api.Register(ctx, timebank.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Bio:       req.Bio,
		Skills:    req.Skills,
		Interests: validation.ParseInterests(req.Interests),
	})
	if err != nil {
		return nil, err
	}

	return s.establish(res)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResult, error) {
	result := validation.ValidateLogin(validation.LoginData{
		Email:    req.Email,
		Password: req.Password,
	})
	if !result.Valid {
		return nil, &FormError{Errors: result.Errors}
	}

	res, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.establish(res)
}

// Logout invalidates the backend token. The cookie is cleared by the
// handler regardless of the upstream result.
func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	return s.authed(sess.APIToken).Logout(ctx)
}

func (s *Service) establish(res *timebank.AuthResponse) (*SessionResult, error) {
	cookie, err := s.sessions.Issue(session.Session{
		UserID:    res.User.ID,
		Email:     res.User.Email,
		FirstName: res.User.FirstName,
		APIToken:  res.Token,
	})
	if err != nil {
		return nil, err
	}
	return &SessionResult{Cookie: cookie, User: res.User}, nil
}

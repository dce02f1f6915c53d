package profile

import (
	"context"
	"strings"

	"timebank/internal/domain"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
	"timebank/internal/validation"
)

type Service struct {
	authed Authed
}

func NewService(authed Authed) *Service {
	return &Service{authed: authed}
}

func (s *Service) Get(ctx context.Context, sess *session.Session) (*domain.User, error) {
	return s.authed(sess.APIToken).Profile(ctx)
}

func (s *Service) Update(ctx context.Context, sess *session.Session, req UpdateRequest) (*domain.User, error) {
	var errs []string
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if req.ZipCode != nil && !validation.ValidZipCode(*req.ZipCode) {
		errs = append(errs, "Please enter a valid ZIP code (e.g., 12345 or 12345-6789)")
	}
	if len(errs) > 0 {
		return nil, &FormError{Errors: errs}
	}

	patch := timebank.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Skills:    req.Skills,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Avatar:    req.Avatar,
	}
	if req.Interests != nil {
		parsed := validation.ParseInterests(*req.Interests)
		if parsed == nil {
			parsed = []string{}
		}
		patch.Interests = &parsed
	}

	return s.authed(sess.APIToken).UpdateProfile(ctx, patch)
}

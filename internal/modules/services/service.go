package services

import (
	"context"
	"fmt"
	"strings"

	"timebank/internal/discovery"
	"timebank/internal/domain"
	"timebank/internal/geo"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
)

const minCreditRequired = 0.5

type Service struct {
	authed Authed
}

func NewService(authed Authed) *Service {
	return &Service{authed: authed}
}

// Discover fetches the collection wholesale (optionally narrowed by ZIP
// upstream), then derives the displayed subset with pure filter/sort. The
// fetched snapshot is what Total reports, so clearing every control restores
// the full collection.
func (s *Service) Discover(ctx context.Context, sess *session.Session, q DiscoverQuery) (*DiscoverView, error) {
	api := s.authed(sess.APIToken)

	all, err := api.ListServices(ctx, timebank.ServiceQuery{ZipCode: strings.TrimSpace(q.ZipCode)})
	if err != nil {
		return nil, err
	}

	criteria := discovery.Criteria{
		Term:        strings.TrimSpace(q.Search),
		Categories:  q.Categories,
		MinCredits:  q.MinCredits,
		MaxCredits:  q.MaxCredits,
		City:        strings.TrimSpace(q.City),
		ServiceType: q.Type,
	}

	filtered := discovery.Apply(all, criteria)
	filtered = discovery.SortBy(filtered, discovery.ParseSortKey(q.Sort))

	view := &DiscoverView{Services: filtered, Total: len(all)}
	if q.View == "map" {
		view.Map = toMapView(geo.SpreadMarkers(filtered))
	}
	return view, nil
}

func (s *Service) Get(ctx context.Context, sess *session.Session, id int64) (*DetailView, error) {
	svc, err := s.authed(sess.APIToken).GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews := svc.CustomerReviews
	if reviews == nil {
		reviews = []string{}
	}
	return &DetailView{
		Service: *svc,
		IsOwner: svc.OwnerID == sess.UserID,
		Reviews: reviews,
	}, nil
}

func (s *Service) Create(ctx context.Context, sess *session.Session, req CreateServiceRequest) (*domain.Service, error) {
	if errs := validateServiceForm(req.Name, req.Description, req.Category, req.ServiceType, req.CreditRequired, req.TotalSessions); len(errs) > 0 {
		return nil, &FormError{Errors: errs}
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return s.authed(sess.APIToken).CreateService(ctx, timebank.ServiceInput{
		Name:           strings.TrimSpace(req.Name),
		Category:       req.Category,
		ServiceType:    domain.ServiceType(req.ServiceType),
		Description:    strings.TrimSpace(req.Description),
		Tags:           req.Tags,
		CreditRequired: req.CreditRequired,
		TotalSessions:  req.TotalSessions,
		City:           strings.TrimSpace(req.City),
		ZipCode:        strings.TrimSpace(req.ZipCode),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		IsAvailable:    available,
	})
}

// Update forwards only the provided fields; ownership is re-validated by the
// backend on every mutating call.
func (s *Service) Update(ctx context.Context, sess *session.Session, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	var errs []string
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, "Service name is required")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if req.Category != nil {
		errs = append(errs, validateCategories(*req.Category)...)
	}
	if req.ServiceType != nil && !validServiceType(*req.ServiceType) {
		errs = append(errs, "Service type must be in-person or virtual")
	}
	if req.CreditRequired != nil && *req.CreditRequired < minCreditRequired {
		errs = append(errs, fmt.Sprintf("Credits must be at least %.1f", minCreditRequired))
	}
	if req.TotalSessions != nil && *req.TotalSessions < 1 {
		errs = append(errs, "Total sessions must be at least 1")
	}
	if len(errs) > 0 {
		return nil, &FormError{Errors: errs}
	}

	patch := timebank.ServicePatch{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Tags:           req.Tags,
		CreditRequired: req.CreditRequired,
		TotalSessions:  req.TotalSessions,
		City:           req.City,
		ZipCode:        req.ZipCode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		IsAvailable:    req.IsAvailable,
	}
	if req.ServiceType != nil {
		t := domain.ServiceType(*req.ServiceType)
		patch.ServiceType = &t
	}

	return s.authed(sess.APIToken).UpdateService(ctx, id, patch)
}

// Delete removes the listing; it disappears from both the discovery list and
// the owner's dashboard on the next fetch.
func (s *Service) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return s.authed(sess.APIToken).DeleteService(ctx, id)
}

// Mine lists the caller's own services through the owner-filtered backend
// endpoint; the discovery list is never re-filtered by email client-side.
func (s *Service) Mine(ctx context.Context, sess *session.Session) ([]domain.Service, error) {
	return s.authed(sess.APIToken).ListServices(ctx, timebank.ServiceQuery{OwnerID: sess.UserID})
}

func validateServiceForm(name, description string, categories []string, serviceType string, credits float64, sessions int) []string {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Service name is required")
	}
	if strings.TrimSpace(description) == "" {
		errs = append(errs, "Description is required")
	}
	if len(categories) == 0 {
		errs = append(errs, "Select at least one category")
	} else {
		errs = append(errs, validateCategories(categories)...)
	}
	if !validServiceType(serviceType) {
		errs = append(errs, "Service type must be in-person or virtual")
	}
	if credits < minCreditRequired {
		errs = append(errs, fmt.Sprintf("Credits must be at least %.1f", minCreditRequired))
	}
	if sessions < 1 {
		errs = append(errs, "Total sessions must be at least 1")
	}
	return errs
}

func validateCategories(categories []string) []string {
	var errs []string
	for _, cat := range categories {
		if !domain.IsKnownCategory(cat) {
			errs = append(errs, fmt.Sprintf("Unknown category %q", cat))
		}
	}
	return errs
}

func validServiceType(t string) bool {
	return t == string(domain.ServiceInPerson) || t == string(domain.ServiceVirtual)
}

package timebank

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"timebank/internal/domain"
)

// ServiceQuery narrows ListServices server-side. Zero values mean "no
// filter"; everything finer-grained (text, categories, credit range) is
// applied client-side by the discovery package.
type ServiceQuery struct {
	ZipCode string
	OwnerID int64
}

type ServiceInput struct {
	Name           string             `json:"name"`
	Category       []string           `json:"category"`
	ServiceType    domain.ServiceType `json:"service_type"`
	Description    string             `json:"description"`
	Tags           []string           `json:"tags"`
	CreditRequired float64            `json:"credit_required"`
	TotalSessions  int                `json:"total_sessions"`
	City           string             `json:"city"`
	ZipCode        string             `json:"zip_code"`
	Latitude       float64            `json:"latitude,omitempty"`
	Longitude      float64            `json:"longitude,omitempty"`
	IsAvailable    bool               `json:"is_available"`
}

type ServicePatch struct {
	Name           *string             `json:"name,omitempty"`
	Category       *[]string           `json:"category,omitempty"`
	ServiceType    *domain.ServiceType `json:"service_type,omitempty"`
	Description    *string             `json:"description,omitempty"`
	Tags           *[]string           `json:"tags,omitempty"`
	CreditRequired *float64            `json:"credit_required,omitempty"`
	TotalSessions  *int                `json:"total_sessions,omitempty"`
	City           *string             `json:"city,omitempty"`
	ZipCode        *string             `json:"zip_code,omitempty"`
	Latitude       *float64            `json:"latitude,omitempty"`
	Longitude      *float64            `json:"longitude,omitempty"`
	IsAvailable    *bool               `json:"is_available,omitempty"`
}

func (c *Client) ListServices(ctx context.Context, q ServiceQuery) ([]domain.Service, error) {
	params := url.Values{}
	if q.ZipCode != "" {
		params.Set("zip_code", q.ZipCode)
	}
	if q.OwnerID != 0 {
		params.Set("owner_id", strconv.FormatInt(q.OwnerID, 10))
	}
	path := "/services/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []domain.Service
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/services/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodPost, "/services/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id int64, patch ServicePatch) (*domain.Service, error) {
	var out domain.Service
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/services/%d/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/services/%d/", id), nil, nil)
}

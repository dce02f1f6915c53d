package services

import (
	"timebank/internal/domain"
	"timebank/internal/geo"
)

// DiscoverQuery mirrors the discovery page's filter controls; every field is
// seeded from the query string and composes with AND.
type DiscoverQuery struct {
	Search     string   `form:"search"`
	Categories []string `form:"category"`
	MinCredits float64  `form:"min_credits"`
	MaxCredits float64  `form:"max_credits"`
	City       string   `form:"city"`
	ZipCode    string   `form:"zip_code"`
	Type       string   `form:"type"`
	Sort       string   `form:"sort"`
	View       string   `form:"view"`
}

// DiscoverView is the derived list state: the filtered subset plus the size
// of the full fetched collection (an empty Services list is a valid state,
// not an error).
type DiscoverView struct {
	Services []domain.Service `json:"services"`
	Total    int              `json:"total"`
	Map      *MapView         `json:"map,omitempty"`
}

type MapView struct {
	Markers   []MarkerView `json:"markers"`
	CenterLat float64      `json:"center_lat"`
	CenterLng float64      `json:"center_lng"`
}

// MarkerView annotates displaced pins so the UI can flag the location
// as approximate, with the exact address shared after booking.
type MarkerView struct {
	Service     domain.Service `json:"service"`
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Approximate bool           `json:"approximate"`
}

func toMapView(markers []geo.Marker) *MapView {
	lat, lng := geo.Center(markers)
	view := &MapView{
		Markers:   make([]MarkerView, 0, len(markers)),
		CenterLat: lat,
		CenterLng: lng,
	}
	for _, m := range markers {
		view.Markers = append(view.Markers, MarkerView{
			Service:     m.Service,
			Lat:         m.Lat,
			Lng:         m.Lng,
			Approximate: m.Offset,
		})
	}
	return view
}

type CreateServiceRequest struct {
	Name           string   `json:"name"`
	Category       []string `json:"category"`
	ServiceType    string   `json:"service_type"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
	CreditRequired float64  `json:"credit_required"`
	TotalSessions  int      `json:"total_sessions"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zip_code"`
	Latitude       float64  `json:"latitude,omitempty"`
	Longitude      float64  `json:"longitude,omitempty"`
	IsAvailable    *bool    `json:"is_available,omitempty"`
}

type UpdateServiceRequest struct {
	Name           *string   `json:"name,omitempty"`
	Category       *[]string `json:"category,omitempty"`
	ServiceType    *string   `json:"service_type,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	CreditRequired *float64  `json:"credit_required,omitempty"`
	TotalSessions  *int      `json:"total_sessions,omitempty"`
	City           *string   `json:"city,omitempty"`
	ZipCode        *string   `json:"zip_code,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	IsAvailable    *bool     `json:"is_available,omitempty"`
}

// DetailView wraps a service with the viewer's relationship to it.
type DetailView struct {
	Service domain.Service `json:"service"`
	IsOwner bool           `json:"is_owner"`
	Reviews []string       `json:"reviews"`
}

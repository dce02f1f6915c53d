package domain

import "time"

type ServiceType string

const (
	ServiceInPerson ServiceType = "in-person"
	ServiceVirtual  ServiceType = "virtual"
)

// Categories is the fixed vocabulary a service may be tagged with.
var Categories = []string{
	"education", "tutoring", "technology", "health", "fitness",
	"cooking", "cleaning", "gardening", "childcare", "petcare",
	"transportation", "handyman", "art", "music", "language",
	"business", "writing", "photography", "other",
}

func IsKnownCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Service is a listing offered by a member, consumable in bounded sessions.
// Latitude/Longitude of 0 mean the owner did not share a location.
type Service struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Category          []string    `json:"category"`
	ServiceType       ServiceType `json:"service_type"`
	Description       string      `json:"description"`
	Tags              []string    `json:"tags"`
	CreditRequired    float64     `json:"credit_required"`
	TotalSessions     int         `json:"total_sessions"`
	RemainingSessions int         `json:"remaining_sessions"`
	OwnerID           int64       `json:"owner"`
	OwnerEmail        string      `json:"owner_email"`
	City              string      `json:"city"`
	ZipCode           string      `json:"zip_code"`
	Latitude          float64     `json:"latitude"`
	Longitude         float64     `json:"longitude"`
	IsAvailable       bool        `json:"is_available"`
	AverageRating     float64     `json:"average_rating"`
	CustomerReviews   []string    `json:"customer_reviews"`
	CreatedAt         time.Time   `json:"created_at"`
}

// HasLocation reports whether the service carries usable coordinates.
func (s Service) HasLocation() bool {
	return s.Latitude != 0 && s.Longitude != 0
}

package domain

// User is the authenticated member profile as returned by the backend.
// TimeCredits is mutated only by the backend as a side effect of booking
// completion; the gateway never adjusts it locally.
type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	TimeCredits float64  `json:"time_credits"`
	Bio         string   `json:"bio,omitempty"`
	Skills      string   `json:"skills,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Street      string   `json:"street"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zip_code"`
	Avatar      string   `json:"avatar,omitempty"`
}

// DisplayName prefers the first name, falling back to the username.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

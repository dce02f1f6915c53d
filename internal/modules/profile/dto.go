package profile

// UpdateRequest carries only the fields the member edited. Interests is the
// raw comma-separated text from the form.
type UpdateRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Skills    *string `json:"skills,omitempty"`
	Interests *string `json:"interests,omitempty"`
	Street    *string `json:"street,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zip_code,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

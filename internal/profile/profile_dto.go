package profile

type ProfileResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"fullName,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
}

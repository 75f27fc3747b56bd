package helpers

type EnhancedClaims struct {
	*CustomClaims
	Role       string `json:"role"`
	UserID     string `json:"id"`
	Email      string `json:"email,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Country    string `json:"country,omitempty"`
	IsStalwart bool   `json:"is_stalwart,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Helper methods for role checking
func (ec *EnhancedClaims) IsMentor() bool {
	return ec.Role == "mentor"
}

func (ec *EnhancedClaims) IsSeeker() bool {
	return ec.Role == "seeker"
}

func (ec *EnhancedClaims) HasRole(role string) bool {
	return ec.Role == role
}

func (ec *EnhancedClaims) IsOwner(userID string) bool {
	return ec.UserID == userID
}

func (ec *EnhancedClaims) GetSafeRole() string {
	if ec.Role == "" {
		return "guest"
	}
	return ec.Role
}

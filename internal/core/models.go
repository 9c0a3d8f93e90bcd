package core

type SignupMessage struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginMessage struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UpdateProfileMessage is a partial profile update. Nil fields are left
// untouched; Links non-nil replaces the entire link set.
type UpdateProfileMessage struct {
	Bio       *string
	AvatarURL *string
	ThemeHex  *string
	Links     []LinkUpdate
}

type LinkUpdate struct {
	Title      string
	URL        string
	Icon       *string
	OrderIndex int
}

// ProfileView is the outward representation of a profile. The same shape is
// served to the owner and to visitors.
type ProfileView struct {
	Username  string     `json:"username"`
	Bio       string     `json:"bio"`
	AvatarURL *string    `json:"avatar_url"`
	ThemeHex  *string    `json:"theme_hex"`
	Links     []LinkView `json:"links"`
}

type LinkView struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Icon       *string `json:"icon,omitempty"`
	OrderIndex int     `json:"order_index"`
}

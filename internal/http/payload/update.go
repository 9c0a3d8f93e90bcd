package payload

import (
	"github.com/jellydator/validation"

	"github.com/FlamesIsCool/tagz-bio/internal/core"
)

type LinkPayload struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Icon       *string `json:"icon"`
	OrderIndex int     `json:"order_index"`
}

func (l LinkPayload) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&l.URL, validation.Required),
		validation.Field(&l.Icon, validation.Length(0, 8)),
	)
}

// UpdateProfileRequest distinguishes absent fields (nil, leave unchanged)
// from explicit clears (pointer to empty string). A present links array,
// even an empty one, replaces the whole link set.
type UpdateProfileRequest struct {
	Bio       *string       `json:"bio"`
	AvatarURL *string       `json:"avatar_url"`
	ThemeHex  *string       `json:"theme_hex"`
	Links     []LinkPayload `json:"links"`
}

func (u UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ThemeHex, validation.Length(0, 16)),
		validation.Field(&u.Links),
	)
}

func (u UpdateProfileRequest) ToMessage() core.UpdateProfileMessage {
	msg := core.UpdateProfileMessage{
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		ThemeHex:  u.ThemeHex,
	}
	if u.Links != nil {
		msg.Links = make([]core.LinkUpdate, len(u.Links))
		for i, l := range u.Links {
			msg.Links[i] = core.LinkUpdate{
				Title:      l.Title,
				URL:        l.URL,
				Icon:       l.Icon,
				OrderIndex: l.OrderIndex,
			}
		}
	}
	return msg
}

package model

// DefaultAdminPassword is the sentinel password used both as the default
// of a freshly created settings record and as the login fallback when
// the store is unreachable.
const DefaultAdminPassword = "admin1234"

// Settings is the un-keyed singleton record at the "settings" path.
// Empty link fields toggle whole storefront sections off.
type Settings struct {
	BannerImage           string   `json:"bannerImage"`
	BannerText            string   `json:"bannerText"`
	BannerLink            string   `json:"bannerLink"`
	BackgroundImage       string   `json:"backgroundImage"`
	MobileBackgroundImage string   `json:"mobileBackgroundImage"`
	WhatsappLink          string   `json:"whatsappLink"`
	MessengerLink         string   `json:"messengerLink"`
	SocialLinks           []string `json:"socialLinks"`
	AdminPassword         string   `json:"adminPassword,omitempty"`
}

// DefaultSettings is the record written lazily on first read.
func DefaultSettings() Settings {
	return Settings{
		AdminPassword: DefaultAdminPassword,
		SocialLinks:   []string{},
	}
}

// Normalize applies read-side defaults to a stored settings record.
func (s Settings) Normalize() Settings {
	if s.SocialLinks == nil {
		s.SocialLinks = []string{}
	}
	return s
}

// Sanitized strips the admin password for public responses.
func (s Settings) Sanitized() Settings {
	s.AdminPassword = ""
	return s.Normalize()
}

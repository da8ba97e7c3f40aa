package i18n

// Message keys.
const (
	KeySiteTitle          = "site.title"
	KeyHeroTitle          = "hero.title"
	KeyHeroSubtitle       = "hero.subtitle"
	KeyProjectsTitle      = "projects.title"
	KeyProjectBadgeRecent = "projects.badge.recent"
	KeyProjectDetails     = "projects.details"

	KeyContactButton             = "contact.button"
	KeyContactLink               = "contact.link"
	KeyContactClose              = "contact.close"
	KeyContactTitle              = "contact.title"
	KeyContactSubtitle           = "contact.subtitle"
	KeyContactName               = "contact.name"
	KeyContactNamePlaceholder    = "contact.name.placeholder"
	KeyContactEmail              = "contact.email"
	KeyContactEmailPlaceholder   = "contact.email.placeholder"
	KeyContactMessage            = "contact.message"
	KeyContactMessagePlaceholder = "contact.message.placeholder"
	KeyContactSend               = "contact.send"
	KeyContactSending            = "contact.sending"
	KeyContactSuccessTitle       = "contact.success.title"
	KeyContactSuccessBody        = "contact.success.body"
	KeyContactInvalid            = "contact.invalid"
	KeyContactBusy               = "contact.busy"

	// The failure notices share their keys with contact.Notice values.
	KeyContactRejected     = "contact.notice.rejected"
	KeyContactConnectivity = "contact.notice.connectivity"

	KeyFieldName    = "contact.field.name"
	KeyFieldEmail   = "contact.field.email"
	KeyFieldMessage = "contact.field.message"
)

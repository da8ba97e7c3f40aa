package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KeySiteTitle, "Carlos Ceballos · Portfolio")
	message.SetString(lang, KeyHeroTitle, "Software developer")
	message.SetString(lang, KeyHeroSubtitle, "I build web products focused on data, performance and a good user experience.")
	message.SetString(lang, KeyProjectsTitle, "Projects")
	message.SetString(lang, KeyProjectBadgeRecent, "Recent")
	message.SetString(lang, KeyProjectDetails, "View details")

	message.SetString(lang, KeyContactButton, "Contact me")
	message.SetString(lang, KeyContactLink, "Contact")
	message.SetString(lang, KeyContactClose, "Close")
	message.SetString(lang, KeyContactTitle, "Let's talk")
	message.SetString(lang, KeyContactSubtitle, "Have a project in mind or just want to say hi?")
	message.SetString(lang, KeyContactName, "Name")
	message.SetString(lang, KeyContactNamePlaceholder, "Your name")
	message.SetString(lang, KeyContactEmail, "Email")
	message.SetString(lang, KeyContactEmailPlaceholder, "you@email.com")
	message.SetString(lang, KeyContactMessage, "Message")
	message.SetString(lang, KeyContactMessagePlaceholder, "Tell me more about your idea...")
	message.SetString(lang, KeyContactSend, "Send message")
	message.SetString(lang, KeyContactSending, "Sending...")
	message.SetString(lang, KeyContactSuccessTitle, "Message sent!")
	message.SetString(lang, KeyContactSuccessBody, "I'll get back to you as soon as possible.")
	message.SetString(lang, KeyContactRejected, "There was an error sending your message. Please try again.")
	message.SetString(lang, KeyContactConnectivity, "There was a connection error. Please check your internet.")
	message.SetString(lang, KeyContactInvalid, "Please check these fields: %s.")
	message.SetString(lang, KeyContactBusy, "Your message is still being sent.")
	message.SetString(lang, KeyFieldName, "name")
	message.SetString(lang, KeyFieldEmail, "email")
	message.SetString(lang, KeyFieldMessage, "message")
}

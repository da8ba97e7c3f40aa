package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, KeySiteTitle, "Carlos Ceballos · Portafolio")
	message.SetString(lang, KeyHeroTitle, "Desarrollador de software")
	message.SetString(lang, KeyHeroSubtitle, "Construyo productos web con foco en datos, rendimiento y buena experiencia de usuario.")
	message.SetString(lang, KeyProjectsTitle, "Proyectos")
	message.SetString(lang, KeyProjectBadgeRecent, "Reciente")
	message.SetString(lang, KeyProjectDetails, "Ver detalles")

	message.SetString(lang, KeyContactButton, "Contáctame")
	message.SetString(lang, KeyContactLink, "Contacto")
	message.SetString(lang, KeyContactClose, "Cerrar")
	message.SetString(lang, KeyContactTitle, "Hablemos")
	message.SetString(lang, KeyContactSubtitle, "¿Tienes un proyecto en mente o solo quieres saludar?")
	message.SetString(lang, KeyContactName, "Nombre")
	message.SetString(lang, KeyContactNamePlaceholder, "Tu nombre")
	message.SetString(lang, KeyContactEmail, "Correo electrónico")
	message.SetString(lang, KeyContactEmailPlaceholder, "tu@email.com")
	message.SetString(lang, KeyContactMessage, "Mensaje")
	message.SetString(lang, KeyContactMessagePlaceholder, "Cuéntame más sobre tu propuesta...")
	message.SetString(lang, KeyContactSend, "Enviar mensaje")
	message.SetString(lang, KeyContactSending, "Enviando...")
	message.SetString(lang, KeyContactSuccessTitle, "¡Mensaje enviado!")
	message.SetString(lang, KeyContactSuccessBody, "Te responderé lo antes posible.")
	message.SetString(lang, KeyContactRejected, "Hubo un error al enviar el mensaje. Por favor, inténtalo de nuevo.")
	message.SetString(lang, KeyContactConnectivity, "Hubo un error de conexión. Por favor, revisa tu internet.")
	message.SetString(lang, KeyContactInvalid, "Revisa los campos marcados: %s.")
	message.SetString(lang, KeyContactBusy, "Tu mensaje aún se está enviando.")
	message.SetString(lang, KeyFieldName, "nombre")
	message.SetString(lang, KeyFieldEmail, "correo electrónico")
	message.SetString(lang, KeyFieldMessage, "mensaje")
}

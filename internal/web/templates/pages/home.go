package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/web/templates/components"
)

// HomeProps are the values rendered on the landing page.
type HomeProps struct {
	Projects  []models.Project
	Modal     components.ContactModalProps
	CSRFToken string
	Nonce     string
}

// Home renders the landing page: navigation, hero, project grid and the
// contact modal slot.
func Home(p HomeProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)

		parts := []templ.Component{
			raw(`<header class="site-header"><nav class="nav"><a class="brand" href="/">CC</a><div class="nav-links"><a href="#projects">`),
			text(loc.T(i18n.KeyProjectsTitle)),
			raw(`</a>`),
			components.ContactTrigger(i18n.KeyContactLink, "btn-link", p.CSRFToken),
			raw(`<span class="lang-switch"><a href="/?lang=es">ES</a> / <a href="/?lang=en">EN</a></span></div></nav></header>`),
			raw(`<main><section class="hero"><h1>`),
			text(loc.T(i18n.KeyHeroTitle)),
			raw(`</h1><p class="hero-subtitle">`),
			text(loc.T(i18n.KeyHeroSubtitle)),
			raw(`</p>`),
			components.ContactTrigger(i18n.KeyContactButton, "btn btn-primary", p.CSRFToken),
			raw(`</section>`),
			components.ProjectGrid(p.Projects),
			raw(`</main>`),
			components.ContactModal(p.Modal),
		}
		for _, c := range parts {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)
		return Layout(LayoutProps{
			Title:     loc.T(i18n.KeySiteTitle),
			CSRFToken: p.CSRFToken,
			Nonce:     p.Nonce,
		}, body).Render(ctx, w)
	})
}

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func text(s string) templ.Component {
	return raw(templ.EscapeString(s))
}

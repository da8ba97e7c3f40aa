package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/i18n"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

// ProjectGrid renders one card per project, in the order given.
func ProjectGrid(projects []models.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)
		h := &html{w: w}
		h.raw(`<section id="projects" class="projects"><h2 class="section-title">`)
		h.text(loc.T(i18n.KeyProjectsTitle))
		h.raw(`</h2><div class="project-grid">`)
		for i, p := range projects {
			h.render(ProjectCard(p, i), ctx)
		}
		h.raw(`</div></section>`)
		return h.err
	})
}

// ProjectCard renders a single catalog entry. index only staggers the
// entrance animation.
func ProjectCard(p models.Project, index int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := i18n.FromContext(ctx)
		h := &html{w: w}
		h.raw(`<article class="project-card" data-type="`)
		h.text(string(p.Type))
		h.raw(`" style="--delay: `)
		h.raw(strconv.Itoa(index * 100))
		h.raw(`ms"><header class="project-card-header"><h3 class="project-title">`)
		h.text(p.Title)
		h.raw(`</h3>`)
		h.raw(`<span class="badge `)
		if p.IsRecent() {
			h.raw(`badge-recent">`)
			h.text(loc.T(i18n.KeyProjectBadgeRecent))
		} else {
			h.raw(`badge-legacy">`)
			h.text(string(p.Type))
		}
		h.raw(`</span></header><p class="project-description">`)
		h.text(p.Description)
		h.raw(`</p><ul class="tech-list">`)
		for _, tech := range p.Tech {
			h.raw(`<li class="tech-tag">`)
			h.text(tech)
			h.raw(`</li>`)
		}
		h.raw(`</ul><a class="project-link" href="`)
		h.url(p.Href())
		h.raw(`" target="_blank" rel="noopener noreferrer">`)
		h.text(loc.T(i18n.KeyProjectDetails))
		h.raw(`</a></article>`)
		return h.err
	})
}

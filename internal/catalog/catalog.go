// Package catalog holds the static list of portfolio projects.
package catalog

import (
	"fmt"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

// projects is rendered in this exact order; nothing sorts it.
var projects = []models.Project{
	{
		Title:       "Buscador Inteligente de Contratos",
		Description: "Plataforma avanzada que utiliza IA para optimizar la búsqueda y análisis de contratos públicos en el SECOP de Colombia. Transforma datos complejos en visualizaciones estratégicas.",
		Year:        2025,
		Tech:        []string{"Python", "Flask", "OpenAI API", "Tailwind CSS"},
		Link:        "https://buscador-secop.onrender.com/",
		Type:        models.ProjectTypeRecent,
	},
	{
		Title:       "Cookiescan - Boilerplate SEO",
		Description: "Estructura base optimizada para sitios web con enfoque en SEO y rendimiento. Incluye integración con Google Apps Script y WhatsApp.",
		Year:        2025,
		Tech:        []string{"Astro", "React", "TypeScript", "Tailwind CSS"},
		Link:        "https://github.com/carlosceballos0427/cookiesscan",
		Type:        models.ProjectTypeRecent,
	},
	{
		Title:       "Ferretic - ERP Ferretero",
		Description: "Sistema integral de gestión de inventarios, ventas y compras. Originalmente desarrollado en 2022 y modernizado con una interfaz premium y analítica de datos.",
		Year:        2022,
		Tech:        []string{"Django", "Angular", "PrimeNG", "SQLite"},
		Link:        "https://github.com/carlosceballos0427/ferretic",
		Type:        models.ProjectType2022,
	},
	{
		Title:       "Mascota Feliz",
		Description: "Aplicación pionera para la gestión de servicios veterinarios. Enfocada en la automatización de procesos clínicos y administrativos.",
		Year:        2022,
		Tech:        []string{".NET Core", "C#", "SQL Server", "Bootstrap"},
		Link:        "https://github.com/carlosceballos0427/Mascota feliz",
		Type:        models.ProjectType2022,
	},
}

// Projects returns a copy of the catalog in display order.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// Lookup finds a project by its title.
func Lookup(title string) (models.Project, bool) {
	for _, p := range projects {
		if p.Title == title {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// Validate checks that every project has a title and that titles are unique.
func Validate(list []models.Project) error {
	seen := make(map[string]struct{}, len(list))
	for i, p := range list {
		if p.Title == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
		if _, dup := seen[p.Title]; dup {
			return fmt.Errorf("project %d: duplicate title %q", i, p.Title)
		}
		seen[p.Title] = struct{}{}
	}
	return nil
}

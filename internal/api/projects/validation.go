package projects

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("project title required")
	}
	if len(title) > 200 {
		return errors.New("title must be 200 characters or less")
	}
	return nil
}

// ValidateType accepts an empty filter or a known project type.
func ValidateType(typ string) error {
	switch models.ProjectType(typ) {
	case "", models.ProjectTypeRecent, models.ProjectType2022:
		return nil
	}
	return fmt.Errorf("unknown project type %q", typ)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/catalog"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

var projectsType string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the project catalog",
	Example: `  portfolio projects
  portfolio projects --type Recent
  portfolio projects -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := catalog.Projects()
		if projectsType != "" {
			filtered := list[:0]
			for _, p := range list {
				if string(p.Type) == projectsType {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}
		return printProjects(cmd.OutOrStdout(), list, output)
	},
}

func init() {
	projectsCmd.Flags().StringVar(&projectsType, "type", "", "only list projects of this type (Recent, 2022)")
	rootCmd.AddCommand(projectsCmd)
}

func printProjects(w io.Writer, list []models.Project, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "table", "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	descWidth := 48
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 100 {
		descWidth = width - 60
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tYEAR\tTYPE\tTECH\tDESCRIPTION")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Title,
			strconv.Itoa(p.Year),
			p.Type,
			strings.Join(p.Tech, ", "),
			truncate(p.Description, descWidth))
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

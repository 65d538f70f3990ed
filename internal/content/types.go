// Package content loads the portfolio shown by folio: the profile used by
// the hero, about and footer sections, and the projects showcase.
package content

import (
	"fmt"
	"sort"
	"strings"
)

// Portfolio is everything the portfolio view renders.
type Portfolio struct {
	Profile  Profile   `yaml:"profile"`
	Projects []Project `yaml:"projects"`

	// Source is where the portfolio was loaded from; empty for the built-in one.
	Source string `yaml:"-"`
}

// Profile describes the portfolio owner.
type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	About    string `yaml:"about"` // markdown
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
	Links    []Link `yaml:"links"`
}

// Link is a labelled URL shown in the footer.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Project is one card in the projects showcase.
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	URL         string   `yaml:"url"`
	Snippet     string   `yaml:"snippet"`
	Language    string   `yaml:"language"`
}

// Link returns the best URL to share for the project.
func (p Project) Link() string {
	if p.URL != "" {
		return p.URL
	}
	return p.Image
}

// Error types for content validation.
type ContentError string

func (e ContentError) Error() string {
	return string(e)
}

const (
	ErrMissingName      ContentError = "profile name is required"
	ErrMissingTitle     ContentError = "project title is required"
	ErrInvalidProjectID ContentError = "project id must be positive"
	ErrDuplicateProject ContentError = "duplicate project id"
)

// Validate checks the portfolio and sorts its projects by ID.
func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Profile.Name) == "" {
		return ErrMissingName
	}

	seen := make(map[int]string, len(p.Projects))
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Title) == "" {
			return fmt.Errorf("project #%d: %w", i+1, ErrMissingTitle)
		}
		if proj.ID <= 0 {
			return fmt.Errorf("project %q: %w", proj.Title, ErrInvalidProjectID)
		}
		if other, ok := seen[proj.ID]; ok {
			return fmt.Errorf("projects %q and %q share id %d: %w", other, proj.Title, proj.ID, ErrDuplicateProject)
		}
		seen[proj.ID] = proj.Title
	}

	sort.SliceStable(p.Projects, func(i, j int) bool {
		return p.Projects[i].ID < p.Projects[j].ID
	})
	return nil
}

// Tags returns every distinct project tag in first-seen order.
func (p *Portfolio) Tags() []string {
	var tags []string
	seen := make(map[string]bool)
	for _, proj := range p.Projects {
		for _, tag := range proj.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

package content

import (
	"fmt"
	"strings"
)

// Markdown renders the portfolio as a single markdown document in page
// order: hero, projects, about and contact.
func (p *Portfolio) Markdown() string {
	var b strings.Builder
	prof := p.Profile

	fmt.Fprintf(&b, "# %s\n\n", prof.Name)
	if prof.Title != "" {
		fmt.Fprintf(&b, "**%s**\n\n", prof.Title)
	}
	if prof.Tagline != "" {
		fmt.Fprintf(&b, "_%s_\n\n", prof.Tagline)
	}

	b.WriteString("## Featured Projects\n\n")
	if len(p.Projects) == 0 {
		b.WriteString("No projects yet.\n\n")
	}
	for _, proj := range p.Projects {
		fmt.Fprintf(&b, "### %02d. %s\n\n", proj.ID, proj.Title)
		if proj.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", proj.Description)
		}
		if len(proj.Tags) > 0 {
			tags := make([]string, len(proj.Tags))
			for i, t := range proj.Tags {
				tags[i] = "`" + t + "`"
			}
			fmt.Fprintf(&b, "%s\n\n", strings.Join(tags, " "))
		}
		if link := proj.Link(); link != "" {
			fmt.Fprintf(&b, "<%s>\n\n", link)
		}
		if proj.Snippet != "" {
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", proj.Language, strings.TrimRight(proj.Snippet, "\n"))
		}
	}

	if prof.About != "" {
		about := strings.TrimSpace(prof.About)
		// The about text usually carries its own heading.
		if !strings.HasPrefix(about, "#") {
			b.WriteString("## About\n\n")
		}
		b.WriteString(about)
		b.WriteString("\n\n")
	}

	var contact []string
	if prof.Email != "" {
		contact = append(contact, "- Email: "+prof.Email)
	}
	if prof.Location != "" {
		contact = append(contact, "- Location: "+prof.Location)
	}
	for _, l := range prof.Links {
		contact = append(contact, fmt.Sprintf("- [%s](%s)", l.Label, l.URL))
	}
	if len(contact) > 0 {
		b.WriteString("## Contact\n\n")
		b.WriteString(strings.Join(contact, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

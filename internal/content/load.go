package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Content directory layout.
const (
	ProfileFile     = "portfolio.yaml"
	ProjectsPattern = "projects/**/*.{yaml,yml}"
)

// Load loads a portfolio from path. An empty path returns Default.
// A file is read as a whole portfolio; a directory is read as
// portfolio.yaml plus one project per file under projects/.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content %s: %w", path, err)
	}

	var p *Portfolio
	if info.IsDir() {
		p, err = loadDir(path)
	} else {
		p, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

func loadFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	return &p, nil
}

func loadDir(dir string) (*Portfolio, error) {
	p := &Portfolio{}
	profilePath := filepath.Join(dir, ProfileFile)
	if _, err := os.Stat(profilePath); err == nil {
		p, err = loadFile(profilePath)
		if err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), ProjectsPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects in %s: %w", dir, err)
	}
	sort.Strings(matches)

	for _, rel := range matches {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var proj Project
		if err := yaml.Unmarshal(data, &proj); err != nil {
			return nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
		}
		p.Projects = append(p.Projects, proj)
	}

	return p, nil
}

// IsContentFile reports whether a path inside a content directory is one
// that Load reads.
func IsContentFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == ProfileFile {
		return true
	}
	ok, err := doublestar.Match(ProjectsPattern, rel)
	return err == nil && ok
}

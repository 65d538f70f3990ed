package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, "VIRENDER", p.Profile.Name)
	require.Len(t, p.Projects, 3)
	assert.Equal(t, "3D Interactive Website", p.Projects[0].Title)
	assert.Equal(t, []string{"Three.js", "React", "WebGL", "Node.js", "Stripe", "Machine Learning", "Python"}, p.Tags())
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	write(t, path, `
profile:
  name: Ada
  title: Engineer
  about: "## Hi"
  links:
    - {label: GitHub, url: "https://github.com/ada"}
projects:
  - id: 2
    title: Second
    tags: [Go]
  - id: 1
    title: First
    url: https://example.com/first
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Profile.Name)
	assert.Equal(t, path, p.Source)
	require.Len(t, p.Projects, 2)
	assert.Equal(t, "First", p.Projects[0].Title, "projects sorted by id")
	assert.Equal(t, "https://example.com/first", p.Projects[0].Link())
	assert.Equal(t, "https://github.com/ada", p.Profile.Links[0].URL)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, ProfileFile), "profile:\n  name: Ada\n")
	write(t, filepath.Join(dir, "projects", "b.yaml"), "id: 2\ntitle: Beta\n")
	write(t, filepath.Join(dir, "projects", "2024", "a.yml"), "id: 1\ntitle: Alpha\n")
	write(t, filepath.Join(dir, "projects", "notes.md"), "# not a project\n")

	p, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, p.Projects, 2)
	assert.Equal(t, "Alpha", p.Projects[0].Title)
	assert.Equal(t, "Beta", p.Projects[1].Title)
}

func TestLoadDirectoryWithoutProfile(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "projects", "a.yaml"), "id: 1\ntitle: Alpha\n")

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	write(t, bad, "profile: [\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse content file")
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		p    Portfolio
		want error
	}{
		"missing name": {Portfolio{}, ErrMissingName},
		"missing title": {Portfolio{
			Profile:  Profile{Name: "x"},
			Projects: []Project{{ID: 1}},
		}, ErrMissingTitle},
		"zero id": {Portfolio{
			Profile:  Profile{Name: "x"},
			Projects: []Project{{Title: "a"}},
		}, ErrInvalidProjectID},
		"duplicate id": {Portfolio{
			Profile:  Profile{Name: "x"},
			Projects: []Project{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}},
		}, ErrDuplicateProject},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tc.p.Validate(), tc.want)
		})
	}
}

func TestIsContentFile(t *testing.T) {
	assert.True(t, IsContentFile("portfolio.yaml"))
	assert.True(t, IsContentFile("projects/a.yaml"))
	assert.True(t, IsContentFile(filepath.Join("projects", "2024", "b.yml")))
	assert.False(t, IsContentFile("projects/a.md"))
	assert.False(t, IsContentFile("other.yaml"))
}

func TestProjectLinkFallsBackToImage(t *testing.T) {
	assert.Equal(t, "img", Project{Image: "img"}.Link())
}

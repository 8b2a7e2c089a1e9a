package skills

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const (
	skillFileName = "SKILL.md"
	scriptsDir    = "scripts"
)

// Discovery locates skills under a set of directories.
type Discovery struct {
	skillDirs []string
}

// Option configures a Discovery.
type Option func(*Discovery) error

// WithSkillDirs sets the directories to scan for skills.
func WithSkillDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		d.skillDirs = dirs
		return nil
	}
}

// WithDefaultDirs scans the repository-local skills directory and the
// user-global one.
func WithDefaultDirs() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.skillDirs = []string{
			"./skills", // Repo-local (highest precedence)
			filepath.Join(homeDir, ".agentkit", "skills"),
		}
		return nil
	}
}

// NewDiscovery creates a Discovery, defaulting to WithDefaultDirs when no
// options are given.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		opts = []Option{WithDefaultDirs()}
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// DiscoverSkills returns every valid skill found under the configured
// directories keyed by name. Earlier directories win on name collisions;
// directories without a parseable SKILL.md are skipped.
func (d *Discovery) DiscoverSkills() (map[string]*Skill, error) {
	found := make(map[string]*Skill)

	for _, dir := range d.skillDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			entryPath := filepath.Join(dir, entry.Name())

			info, err := os.Stat(entryPath)
			if err != nil || !info.IsDir() {
				continue
			}

			skill, err := loadSkill(filepath.Join(entryPath, skillFileName))
			if err != nil {
				continue
			}

			if _, exists := found[skill.Name]; exists {
				continue
			}
			skill.Directory = entryPath
			skill.Scripts = findScripts(entryPath)
			found[skill.Name] = skill
		}
	}

	return found, nil
}

// GetSkill returns a skill by name.
func (d *Discovery) GetSkill(name string) (*Skill, error) {
	all, err := d.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	skill, exists := all[name]
	if !exists {
		return nil, errors.Errorf("skill '%s' not found", name)
	}
	return skill, nil
}

// ListSkillNames returns the sorted names of all discoverable skills.
func (d *Discovery) ListSkillNames() ([]string, error) {
	all, err := d.DiscoverSkills()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// loadSkill parses a SKILL.md file into a Skill, requiring both name and
// description in the frontmatter.
func loadSkill(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)
	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	return &Skill{
		Name:        name,
		Description: description,
		Content:     stripFrontmatter(string(content)),
	}, nil
}

// findScripts lists the files in the skill's scripts directory, if any.
func findScripts(skillDir string) []string {
	entries, err := os.ReadDir(filepath.Join(skillDir, scriptsDir))
	if err != nil {
		return nil
	}

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		scripts = append(scripts, filepath.Join(skillDir, scriptsDir, entry.Name()))
	}
	return scripts
}

// stripFrontmatter removes the leading YAML block and returns the body.
func stripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return content
}

// FilterByAllowlist keeps only the named skills. An empty allowlist keeps
// everything.
func FilterByAllowlist(all map[string]*Skill, allowed []string) map[string]*Skill {
	if len(allowed) == 0 {
		return all
	}

	filtered := make(map[string]*Skill)
	for _, name := range allowed {
		if skill, exists := all[name]; exists {
			filtered[name] = skill
		}
	}
	return filtered
}

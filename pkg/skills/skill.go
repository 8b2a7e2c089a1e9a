// Package skills discovers the example skills shipped in this repository.
// A skill is a directory containing a SKILL.md file whose YAML frontmatter
// names and describes it; the markdown body carries the instructions an
// agent reads before invoking the skill's programs.
package skills

// Skill is one discovered skill.
type Skill struct {
	Name        string   // Unique name from frontmatter
	Description string   // One-line description for agent decision-making
	Directory   string   // Full path to the skill directory
	Content     string   // SKILL.md body with the frontmatter stripped
	Scripts     []string // Paths of executables under the skill's scripts directory
}

// Metadata is the YAML frontmatter of a SKILL.md file.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

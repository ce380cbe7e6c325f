package domain

// TemplateCategory classifies a global template variable.
type TemplateCategory string

const (
	TemplateCategoryCharacter TemplateCategory = "character"
	TemplateCategoryStyle     TemplateCategory = "style"
	TemplateCategoryScenery   TemplateCategory = "scenery"
)

// ValidTemplateCategory reports whether c is one of the known categories.
func ValidTemplateCategory(c string) bool {
	switch TemplateCategory(c) {
	case TemplateCategoryCharacter, TemplateCategoryStyle, TemplateCategoryScenery:
		return true
	}
	return false
}

// GlobalTemplate is a named variable referenced from shot prompts across
// any script via the {{name}} placeholder syntax. Names are unique and
// identifier-shaped.
type GlobalTemplate struct {
	Name     string           `json:"name"`
	Category TemplateCategory `json:"category"`
	Value    string           `json:"value"`
}

// TemplateUsage reports where a template name is referenced.
type TemplateUsage struct {
	TemplateName string        `json:"templateName"`
	Usages       []ScriptUsage `json:"usages"`
}

// ScriptUsage lists the 1-based shot indices of one script that reference
// the template. AllShots is set when every shot of the script matches.
type ScriptUsage struct {
	ScriptID    string `json:"scriptId"`
	ScriptTitle string `json:"scriptTitle"`
	ShotIndices []int  `json:"shotIndices"`
	AllShots    bool   `json:"allShots"`
}

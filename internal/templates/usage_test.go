package templates

import (
	"reflect"
	"testing"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

func scriptWithPrompts(id, title string, prompts ...string) domain.Script {
	script := domain.Script{ID: id, Title: title}
	for i, p := range prompts {
		script.Shots = append(script.Shots, domain.Shot{ID: id + "_shot_" + string(rune('a'+i)), Prompt: p})
	}
	return script
}

func TestComputeUsageEmptyCorpus(t *testing.T) {
	usage := ComputeUsage("Maya", nil)
	if usage.TemplateName != "Maya" {
		t.Fatalf("unexpected template name: %q", usage.TemplateName)
	}
	if usage.Usages == nil || len(usage.Usages) != 0 {
		t.Fatalf("expected empty non-nil usages, got %#v", usage.Usages)
	}

	lines := FormatUsage(usage)
	if len(lines) != 1 || lines[0] != "Not used in any script" {
		t.Fatalf("unexpected report: %v", lines)
	}
}

func TestComputeUsagePartialMatch(t *testing.T) {
	script := scriptWithPrompts("scr_1", "Hero Journey",
		"{{hero}} A",
		"plain",
		"{{hero}} B",
	)

	usage := ComputeUsage("hero", []domain.Script{script})
	if len(usage.Usages) != 1 {
		t.Fatalf("expected one usage, got %+v", usage.Usages)
	}
	u := usage.Usages[0]
	if !reflect.DeepEqual(u.ShotIndices, []int{1, 3}) {
		t.Fatalf("expected 1-based indices [1 3], got %v", u.ShotIndices)
	}
	if u.AllShots {
		t.Fatal("not every shot matches, AllShots must be false")
	}

	lines := FormatUsage(usage)
	if len(lines) != 1 || lines[0] != "Used in: Hero Journey (Shots 1, 3)" {
		t.Fatalf("unexpected report: %v", lines)
	}
}

func TestComputeUsageAllShots(t *testing.T) {
	script := scriptWithPrompts("scr_1", "Maya Story",
		"{{Maya}} at sea",
		"{{Maya}} returns",
	)

	usage := ComputeUsage("Maya", []domain.Script{script})
	if len(usage.Usages) != 1 || !usage.Usages[0].AllShots {
		t.Fatalf("expected AllShots usage, got %+v", usage.Usages)
	}
	lines := FormatUsage(usage)
	if lines[0] != "Used in: Maya Story (All)" {
		t.Fatalf("unexpected report: %v", lines)
	}
}

func TestComputeUsageExactMatchOnly(t *testing.T) {
	script := scriptWithPrompts("scr_1", "Edge Cases",
		"{{heroic}} deed",  // longer name must not match
		"{{ hero }} loose", // whitespace variant must not match
		"hero without braces",
	)

	usage := ComputeUsage("hero", []domain.Script{script})
	if len(usage.Usages) != 0 {
		t.Fatalf("expected no usages, got %+v", usage.Usages)
	}
}

func TestComputeUsageSkipsShotlessScripts(t *testing.T) {
	empty := domain.Script{ID: "scr_0", Title: "Empty"}
	hit := scriptWithPrompts("scr_1", "Hit", "{{hero}}")

	usage := ComputeUsage("hero", []domain.Script{empty, hit})
	if len(usage.Usages) != 1 || usage.Usages[0].ScriptID != "scr_1" {
		t.Fatalf("expected only the matching script, got %+v", usage.Usages)
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"hero", "Maya", "_x", "scene_2"} {
		if err := ValidateName(name); err != nil {
			t.Fatalf("expected %q valid: %v", name, err)
		}
	}
	for _, name := range []string{"", "2cool", "has space", "dash-ed", "{{x}}"} {
		if err := ValidateName(name); err == nil {
			t.Fatalf("expected %q invalid", name)
		}
	}
}

package guide

import (
	"strings"
	"testing"
	"unicode"

	"pgregory.net/rapid"
)

// queryGen mixes arbitrary text with fragments of real labels so both the
// match and no-match paths get exercised.
func queryGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.String(),
		rapid.StringMatching(`[ \t]*[A-Za-z& ]{0,8}[ \t]*`),
		rapid.Custom(func(t *rapid.T) string {
			sec := rapid.SampledFrom(Sections()).Draw(t, "section")
			start := rapid.IntRange(0, len(sec.Label)).Draw(t, "start")
			end := rapid.IntRange(start, len(sec.Label)).Draw(t, "end")
			return sec.Label[start:end]
		}),
	)
}

func TestPropVisibleSectionsPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := queryGen().Draw(t, "query")
		prev := -1
		for _, sec := range VisibleSections(q) {
			idx := IndexOf(sec.ID)
			if idx < 0 {
				t.Fatalf("returned section %q not in the fixed list", sec.ID)
			}
			if idx <= prev {
				t.Fatalf("order broken for %q: index %d after %d", q, idx, prev)
			}
			prev = idx
		}
	})
}

func TestPropVisibleSectionsMatchQuery(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := queryGen().Draw(t, "query")
		norm := strings.ToLower(strings.TrimSpace(q))
		got := VisibleSections(q)

		if norm == "" {
			if len(got) != SectionCount {
				t.Fatalf("blank query %q returned %d sections", q, len(got))
			}
			return
		}
		seen := make(map[SectionID]bool, len(got))
		for _, sec := range got {
			seen[sec.ID] = true
			if !strings.Contains(strings.ToLower(sec.Label), norm) {
				t.Fatalf("label %q does not contain %q", sec.Label, norm)
			}
		}
		// Nothing that matches may be dropped either.
		for _, sec := range Sections() {
			if strings.Contains(strings.ToLower(sec.Label), norm) && !seen[sec.ID] {
				t.Fatalf("label %q matches %q but was filtered out", sec.Label, norm)
			}
		}
	})
}

func TestPropLabelFragmentsFindTheirSection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sec := rapid.SampledFrom(Sections()).Draw(t, "section")
		start := rapid.IntRange(0, len(sec.Label)-1).Draw(t, "start")
		end := rapid.IntRange(start+1, len(sec.Label)).Draw(t, "end")
		frag := []rune(sec.Label[start:end])
		if strings.TrimSpace(string(frag)) == "" {
			return
		}
		for i, r := range frag {
			if rapid.Bool().Draw(t, "upper") {
				frag[i] = unicode.ToUpper(r)
			}
		}
		pad := strings.Repeat(" ", rapid.IntRange(0, 3).Draw(t, "pad"))
		q := pad + string(frag) + pad

		for _, got := range VisibleSections(q) {
			if got.ID == sec.ID {
				return
			}
		}
		t.Fatalf("fragment %q of %q did not find its section", q, sec.Label)
	})
}

func TestPropActiveSurvivesAnyQuery(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewViewState()
		id := rapid.SampledFrom(Sections()).Draw(t, "section").ID
		s.SetActive(id)
		queries := rapid.SliceOfN(queryGen(), 1, 5).Draw(t, "queries")
		for _, q := range queries {
			s.SetQuery(q)
			if s.ActiveID() != id {
				t.Fatalf("query %q moved active from %q to %q", q, id, s.ActiveID())
			}
			if s.Panel().ID != id {
				t.Fatalf("panel for %q is %q", id, s.Panel().ID)
			}
		}
	})
}

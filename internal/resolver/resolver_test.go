package resolver

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/proj-dev/proj/internal/store"
)

// scriptedPrompter feeds pre-recorded input lines and records all
// printed output.
type scriptedPrompter struct {
	lines   []string
	printed []string
	readErr error
}

func (p *scriptedPrompter) Println(text string) {
	p.printed = append(p.printed, text)
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) {
	if p.readErr != nil {
		return "", p.readErr
	}
	if len(p.lines) == 0 {
		return "", errors.New("scripted prompter exhausted")
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func TestResolveExactMatchWinsOverSubstring(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"api":       "/a",
		"apiserver": "/b",
	}

	pr := &scriptedPrompter{}
	got, err := Resolve(projects, "api", "Which project?", pr)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Name != "api" || got.Path != "/a" {
		t.Errorf("Resolve() = %+v, want {api /a}", got)
	}
	if len(pr.printed) != 0 {
		t.Errorf("exact match should not prompt, printed %v", pr.printed)
	}
}

func TestResolveUniqueSubstring(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{"frontend": "/f"}

	got, err := Resolve(projects, "front", "", &scriptedPrompter{})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Name != "frontend" || got.Path != "/f" {
		t.Errorf("Resolve() = %+v, want {frontend /f}", got)
	}
}

func TestResolveNoMatch(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"api": "/a",
		"web": "/w",
	}

	_, err := Resolve(projects, "database", "", &scriptedPrompter{})
	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("expected NoMatchError, got %v", err)
	}
	if noMatch.Query != "database" {
		t.Errorf("NoMatchError.Query = %q, want %q", noMatch.Query, "database")
	}
}

func TestResolveEmptyMapFailsBeforePrompting(t *testing.T) {
	t.Parallel()

	pr := &scriptedPrompter{lines: []string{"anything"}}

	for _, query := range []string{"", "api"} {
		_, err := Resolve(store.ProjectMap{}, query, "Which project?", pr)
		if !errors.Is(err, ErrNoProjects) {
			t.Errorf("Resolve(empty, %q) = %v, want ErrNoProjects", query, err)
		}
	}
	if len(pr.printed) != 0 {
		t.Errorf("empty map must not prompt, printed %v", pr.printed)
	}
	if len(pr.lines) != 1 {
		t.Error("empty map must not consume input")
	}
}

func TestResolveAmbiguousNarrows(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"web-a": "/1",
		"web-b": "/2",
		"api":   "/3",
	}

	pr := &scriptedPrompter{lines: []string{"web-a"}}
	got, err := Resolve(projects, "web", "Which project?", pr)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Name != "web-a" || got.Path != "/1" {
		t.Errorf("Resolve() = %+v, want {web-a /1}", got)
	}

	if len(pr.printed) != 1 {
		t.Fatalf("expected 1 listing, got %d: %v", len(pr.printed), pr.printed)
	}
	listing := pr.printed[0]

	// The sub-listing uses a count heading, never the caller's question
	if !strings.HasPrefix(listing, "2 projects found\n\n") {
		t.Errorf("sub-listing heading = %q, want count heading", listing)
	}
	if strings.Contains(listing, "Which project?") {
		t.Error("sub-listing must not repeat the original prompt")
	}
	if strings.Contains(listing, "api") {
		t.Error("sub-listing must contain only matched entries")
	}
	if !strings.Contains(listing, "web-a") || !strings.Contains(listing, "web-b") {
		t.Errorf("sub-listing missing matched entries: %q", listing)
	}
}

func TestResolveAmbiguousSubstringAtSubPrompt(t *testing.T) {
	t.Parallel()

	// Narrowing input may itself be a substring of the candidates.
	projects := store.ProjectMap{
		"web-alpha": "/1",
		"web-beta":  "/2",
	}

	pr := &scriptedPrompter{lines: []string{"alp"}}
	got, err := Resolve(projects, "web", "", pr)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Name != "web-alpha" || got.Path != "/1" {
		t.Errorf("Resolve() = %+v, want {web-alpha /1}", got)
	}
}

func TestResolveEmptyQueryPromptsWithHeading(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"api": "/a",
		"web": "/w",
	}

	pr := &scriptedPrompter{lines: []string{"api"}}
	got, err := Resolve(projects, "", "Which project should be loaded?", pr)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Name != "api" {
		t.Errorf("Resolve() = %+v, want api", got)
	}

	if len(pr.printed) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(pr.printed))
	}
	if !strings.HasPrefix(pr.printed[0], "Which project should be loaded?\n\n") {
		t.Errorf("first listing should use the caller's heading, got %q", pr.printed[0])
	}
}

func TestResolveSecondListingDropsHeading(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"api": "/a",
		"web": "/w",
	}

	// Empty line at the first prompt triggers a second full listing,
	// which must switch to the count heading.
	pr := &scriptedPrompter{lines: []string{"", "web"}}
	got, err := Resolve(projects, "", "Which project?", pr)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Name != "web" {
		t.Errorf("Resolve() = %+v, want web", got)
	}

	if len(pr.printed) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(pr.printed))
	}
	if !strings.HasPrefix(pr.printed[1], "2 projects found\n\n") {
		t.Errorf("second listing heading = %q, want count heading", pr.printed[1])
	}
}

func TestResolvePathTakenFromOriginalMap(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"web-a": "/original",
		"web-b": "/2",
	}

	pr := &scriptedPrompter{lines: []string{"web-a"}}
	got, err := Resolve(projects, "web", "", pr)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got.Path != projects["web-a"] {
		t.Errorf("path = %q, want lookup in original map %q", got.Path, projects["web-a"])
	}
}

func TestResolveInputError(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"api": "/a",
		"web": "/w",
	}

	cause := errors.New("stdin closed")
	pr := &scriptedPrompter{readErr: cause}

	_, err := Resolve(projects, "", "", pr)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("InputError should wrap the underlying cause")
	}
}

func TestResolveDoesNotMutateProjects(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"web-a": "/1",
		"web-b": "/2",
		"api":   "/3",
	}

	pr := &scriptedPrompter{lines: []string{"web-b"}}
	if _, err := Resolve(projects, "web", "", pr); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	if len(projects) != 3 || projects["api"] != "/3" {
		t.Errorf("projects mutated: %v", projects)
	}
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"api":       "/a",
		"apiserver": "/b",
	}

	first, err := Resolve(projects, "api", "", &scriptedPrompter{})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	second, err := Resolve(projects, "api", "", &scriptedPrompter{})
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated resolution differs: %+v vs %+v", first, second)
	}
}

func TestNoMatchErrorSuggestions(t *testing.T) {
	t.Parallel()

	projects := store.ProjectMap{
		"frontend": "/f",
		"backend":  "/b",
	}

	_, err := Resolve(projects, "frnted", "", &scriptedPrompter{})
	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("expected NoMatchError, got %v", err)
	}
	found := false
	for _, s := range noMatch.Suggestions {
		if s == "frontend" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions %v should include frontend", noMatch.Suggestions)
	}
	if !strings.Contains(noMatch.Error(), "did you mean") {
		t.Errorf("error message should mention suggestions: %q", noMatch.Error())
	}
}

func TestNoMatchErrorWithoutSuggestions(t *testing.T) {
	t.Parallel()

	e := &NoMatchError{Query: "zzz"}
	want := fmt.Sprintf("no project matching %q", "zzz")
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

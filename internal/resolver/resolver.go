package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/proj-dev/proj/internal/store"
)

// ErrNoProjects is returned when resolution starts with an empty map.
var ErrNoProjects = errors.New("no saved projects found")

// NoMatchError is returned when a query matches no project, exactly
// or by substring. Suggestions holds the closest fuzzy matches, if any.
type NoMatchError struct {
	Query       string
	Suggestions []string
}

func (e *NoMatchError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no project matching %q", e.Query)
	}
	return fmt.Sprintf("no project matching %q (did you mean %s?)", e.Query, strings.Join(e.Suggestions, ", "))
}

// InputError is returned when reading interactive input fails.
// Resolution aborts; there is no retry.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return fmt.Sprintf("read input: %v", e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// Project is a resolved (name, path) pair.
type Project struct {
	Name string
	Path string
}

// Prompter is the interactive collaborator used when a query is empty
// or ambiguous. Both calls block on the process's terminal streams.
type Prompter interface {
	// Println prints text followed by a newline.
	Println(text string)
	// ReadLine prints prompt and reads one line of input,
	// with the trailing newline trimmed.
	ReadLine(prompt string) (string, error)
}

// maxSuggestions caps the fuzzy matches attached to a NoMatchError.
const maxSuggestions = 3

// Resolve narrows query down to exactly one project from projects.
//
// Precedence: an empty map fails immediately with ErrNoProjects, before
// any prompting. An empty query lists all candidates under the given
// heading and asks for a new one. An exact name match always wins, even
// when other names contain the query as a substring. Otherwise the
// candidates whose names contain the query are collected: none fails
// with NoMatchError, one resolves directly, several are listed under a
// count heading and the user is asked again against only those entries.
//
// The returned path is always looked up in the original map, never in a
// narrowed copy. Resolve never mutates projects.
func Resolve(projects store.ProjectMap, query, heading string, pr Prompter) (Project, error) {
	if len(projects) == 0 {
		return Project{}, ErrNoProjects
	}

	// Iterative form of the recursive narrowing: each pass either
	// resolves, fails, or shrinks candidates and asks again. Only the
	// first listing shows the caller's heading; disambiguation listings
	// show the candidate count instead.
	candidates := projects
	for {
		if query == "" {
			pr.Println(renderListing(candidates, heading))
			line, err := pr.ReadLine("\nEnter project: ")
			if err != nil {
				return Project{}, &InputError{Err: err}
			}
			query, heading = line, ""
			continue
		}

		if _, ok := candidates[query]; ok {
			return Project{Name: query, Path: projects[query]}, nil
		}

		matches := candidates.Match(query)
		switch len(matches) {
		case 0:
			return Project{}, &NoMatchError{Query: query, Suggestions: suggest(query, candidates)}
		case 1:
			name := matches.Names()[0]
			return Project{Name: name, Path: projects[name]}, nil
		default:
			candidates, query, heading = matches, "", ""
		}
	}
}

// suggest returns up to maxSuggestions project names that fuzzy-match
// the failed query, best first.
func suggest(query string, m store.ProjectMap) []string {
	matches := fuzzy.Find(query, m.Names())
	var names []string
	for _, match := range matches {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, match.Str)
	}
	return names
}

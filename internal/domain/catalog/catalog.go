// Package catalog holds the fixed vocabularies projects are tagged with.
package catalog

import (
	"fmt"
	"strings"
)

type Entry struct {
	Key   string
	Label string
}

// Mapping is an ordered key -> label vocabulary.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

func NewMapping(entries ...Entry) Mapping {
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		index[entry.Key] = i
	}
	return Mapping{entries: entries, index: index}
}

func (m Mapping) Label(key string) (string, bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[i].Label, true
}

func (m Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

func (m Mapping) First() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[0].Key
}

var Complexities = NewMapping(
	Entry{Key: "beginner", Label: "Beginner"},
	Entry{Key: "intermediate", Label: "Intermediate"},
	Entry{Key: "advanced", Label: "Advanced"},
	Entry{Key: "expert", Label: "Expert"},
)

var Roles = NewMapping(
	Entry{Key: "frontend", Label: "Frontend Developer"},
	Entry{Key: "backend", Label: "Backend Developer"},
	Entry{Key: "fullstack", Label: "Full-stack Developer"},
	Entry{Key: "mobile", Label: "Mobile Developer"},
	Entry{Key: "designer", Label: "Designer"},
	Entry{Key: "devops", Label: "DevOps Engineer"},
	Entry{Key: "data", Label: "Data Scientist"},
	Entry{Key: "pm", Label: "Project Manager"},
)

var Technologies = NewMapping(
	Entry{Key: "go", Label: "Go"},
	Entry{Key: "typescript", Label: "TypeScript"},
	Entry{Key: "javascript", Label: "JavaScript"},
	Entry{Key: "python", Label: "Python"},
	Entry{Key: "rust", Label: "Rust"},
	Entry{Key: "java", Label: "Java"},
	Entry{Key: "react", Label: "React"},
	Entry{Key: "vue", Label: "Vue"},
	Entry{Key: "svelte", Label: "Svelte"},
	Entry{Key: "node", Label: "Node.js"},
	Entry{Key: "postgres", Label: "PostgreSQL"},
	Entry{Key: "redis", Label: "Redis"},
	Entry{Key: "docker", Label: "Docker"},
	Entry{Key: "kubernetes", Label: "Kubernetes"},
	Entry{Key: "aws", Label: "AWS"},
	Entry{Key: "flutter", Label: "Flutter"},
)

const (
	SortNewest        = "Newest"
	SortOldest        = "Oldest"
	SortMostFavorites = "Most favorites"
)

// SortBy maps the user-facing sort parameter onto a sort order.
var SortBy = NewMapping(
	Entry{Key: "newest", Label: SortNewest},
	Entry{Key: "oldest", Label: SortOldest},
	Entry{Key: "most_favorites", Label: SortMostFavorites},
)

// TechnologyStackText renders technology keys as a sentence fragment.
// Unknown keys are skipped.
func TechnologyStackText(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if label, ok := Technologies.Label(key); ok {
			names = append(names, label)
		}
	}
	return ListText(names)
}

// ListText joins names as "A", "A and B", "A, B, and C" or
// "A, B, C, and N more".
func ListText(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	case 3:
		return fmt.Sprintf("%s, %s, and %s", names[0], names[1], names[2])
	default:
		return fmt.Sprintf("%s, and %d more", strings.Join(names[:3], ", "), len(names)-3)
	}
}

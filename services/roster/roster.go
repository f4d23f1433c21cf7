// Package roster provides the read-only list of students sessions are booked for.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"courtcredits/models"
)

// ErrStudentNotFound is returned when a name is not on the roster.
var ErrStudentNotFound = errors.New("student not found")

// Snapshot is an immutable roster. It is built once and handed to the components that need it.
type Snapshot struct {
	students []models.Student
	byName   map[string]int
}

// New builds a snapshot; the last entry wins when names repeat (case-insensitive).
func New(students []models.Student) *Snapshot {
	s := &Snapshot{
		students: slices.Clone(students),
		byName:   make(map[string]int, len(students)),
	}
	for i, st := range s.students {
		s.byName[key(st.Name)] = i
	}
	return s
}

// Load reads a JSON array of students. A missing file yields an empty roster.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	var students []models.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}
	return New(students), nil
}

// All returns a copy of every student in file order.
func (s *Snapshot) All() []models.Student {
	return slices.Clone(s.students)
}

// Find looks a student up by name.
func (s *Snapshot) Find(name string) (models.Student, error) {
	i, ok := s.byName[key(name)]
	if !ok {
		return models.Student{}, fmt.Errorf("%w: %q", ErrStudentNotFound, name)
	}
	return s.students[i], nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

package store

import (
	"fmt"

	"attendance_app/models"
)

// RegisterStudent appends a new student and saves the roster. A duplicate
// index leaves the roster untouched.
func (s *Store) RegisterStudent(index, name string) (models.Student, error) {
	if _, exists := s.SearchStudent(index); exists {
		return models.Student{}, fmt.Errorf("%w: %s", ErrDuplicateStudent, index)
	}

	st := models.Student{Index: index, Name: name}
	s.students = append(s.students, st)

	if err := s.SaveStudents(); err != nil {
		return st, fmt.Errorf("student registered but roster not saved: %w", err)
	}
	return st, nil
}

func (s *Store) SearchStudent(index string) (models.Student, bool) {
	for _, st := range s.students {
		if st.Index == index {
			return st, true
		}
	}
	return models.Student{}, false
}

func (s *Store) SaveStudents() error {
	if err := s.repo.SaveStudents(s.students); err != nil {
		return fmt.Errorf("could not save students: %w", err)
	}
	return nil
}

// LoadStudents replaces the roster with the stored one. On error the
// in-memory roster is kept.
func (s *Store) LoadStudents() (int, error) {
	students, err := s.repo.LoadStudents()
	if err != nil {
		return 0, fmt.Errorf("could not load students: %w", err)
	}
	s.students = students
	return len(s.students), nil
}

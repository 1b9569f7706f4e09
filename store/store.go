// Package store holds the roster and the attendance sessions in memory and
// mediates every operator action on them.
package store

import (
	"errors"
	"fmt"

	"attendance_app/models"
)

// Repository persists the roster and individual sessions.
type Repository interface {
	SaveStudents(students []models.Student) error
	LoadStudents() ([]models.Student, error)
	// SaveSession overwrites the stored copy and returns where it was written.
	SaveSession(session *models.Session) (string, error)
	// LoadSession reads a session by its storage name. Sessions stored without
	// records come back initialized from roster.
	LoadSession(name string, roster []models.Student) (*models.Session, error)
}

// Store is the single owner of the roster and session lists. It is not safe
// for concurrent use.
type Store struct {
	repo     Repository
	students []models.Student
	sessions []*models.Session
}

func New(repo Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) Students() []models.Student {
	return s.students
}

func (s *Store) Sessions() []*models.Session {
	return s.sessions
}

// Session returns the session with the given 1-based number.
func (s *Store) Session(number int) (*models.Session, error) {
	if len(s.sessions) == 0 {
		return nil, ErrNoSessions
	}
	if number < 1 || number > len(s.sessions) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSelection, number)
	}
	return s.sessions[number-1], nil
}

// Close flushes the roster and every session.
func (s *Store) Close() error {
	studentsErr := s.SaveStudents()
	_, sessionsErr := s.SaveAllSessions()
	return errors.Join(studentsErr, sessionsErr)
}

func (s *Store) studentName(index string) string {
	if st, ok := s.SearchStudent(index); ok {
		return st.Name
	}
	return "Unknown"
}

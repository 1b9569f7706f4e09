package store

import (
	"errors"
	"fmt"

	"attendance_app/models"
)

// MarkResult describes what happened to one roster entry while marking.
type MarkResult int

const (
	MarkUpdated MarkResult = iota
	// MarkSkipped means the entry was empty and the record kept its status.
	MarkSkipped
	// MarkInvalid means the entry was not P, A or L and the record kept its status.
	MarkInvalid
	// MarkNotInSession means the student joined the roster after the session was created.
	MarkNotInSession
)

func (r MarkResult) String() string {
	switch r {
	case MarkUpdated:
		return "updated"
	case MarkSkipped:
		return "skipped"
	case MarkInvalid:
		return "invalid"
	case MarkNotInSession:
		return "not in session"
	default:
		return "unknown"
	}
}

func (r MarkResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type MarkOutcome struct {
	Student models.Student `json:"student"`
	Input   string         `json:"input"`
	Result  MarkResult     `json:"result"`
	Status  models.Status  `json:"status"`
}

// CreateSession adds a session with one Absent record per registered student.
// The session is not saved until SaveAllSessions or Close.
func (s *Store) CreateSession(course, date, startTime string, durationHours int) (*models.Session, error) {
	if len(s.students) == 0 {
		return nil, ErrNoStudents
	}
	session := models.NewSession(course, date, startTime, durationHours)
	session.InitializeRecords(s.students)
	s.sessions = append(s.sessions, session)
	return session, nil
}

// MarkAttendance walks the roster in order and asks input for each student's
// entry. Entries are validated with models.ParseStatusInput; anything that
// does not parse leaves the record as it was.
func (s *Store) MarkAttendance(number int, input func(i int, st models.Student) string) ([]MarkOutcome, error) {
	session, err := s.Session(number)
	if err != nil {
		return nil, err
	}

	outcomes := make([]MarkOutcome, 0, len(s.students))
	for i, st := range s.students {
		entry := input(i, st)
		out := MarkOutcome{Student: st, Input: entry}

		status, ok := models.ParseStatusInput(entry)
		switch {
		case entry == "":
			out.Result = MarkSkipped
		case !ok:
			out.Result = MarkInvalid
		case !session.UpdateRecord(st.Index, status):
			out.Result = MarkNotInSession
		default:
			out.Result = MarkUpdated
		}
		out.Status = session.StatusOf(st.Index)
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

func (s *Store) SaveSession(session *models.Session) (string, error) {
	loc, err := s.repo.SaveSession(session)
	if err != nil {
		return "", fmt.Errorf("could not save session %s: %w", session.Filename(), err)
	}
	return loc, nil
}

// SaveAllSessions writes every session to its own location. A failing session
// does not stop the others; the returned error joins all failures.
func (s *Store) SaveAllSessions() ([]string, error) {
	var saved []string
	var errs []error
	for _, session := range s.sessions {
		loc, err := s.SaveSession(session)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		saved = append(saved, loc)
	}
	return saved, errors.Join(errs...)
}

// LoadSessionFromFile reads a stored session and appends it. Sessions with the
// same course and date are not merged.
func (s *Store) LoadSessionFromFile(name string) (*models.Session, error) {
	session, err := s.repo.LoadSession(name, s.students)
	if err != nil {
		return nil, fmt.Errorf("could not load session %s: %w", name, err)
	}
	s.sessions = append(s.sessions, session)
	return session, nil
}

package store

import "attendance_app/models"

type Report struct {
	Session *models.Session        `json:"session"`
	Rows    []models.AttendanceRow `json:"rows"`
	Summary models.Summary         `json:"summary"`
}

// Report resolves student names for every record of the numbered session.
// Records whose student is no longer on the roster show as Unknown.
func (s *Store) Report(number int) (*Report, error) {
	session, err := s.Session(number)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AttendanceRow, 0, len(session.Records))
	for _, r := range session.Records {
		rows = append(rows, models.AttendanceRow{
			StudentIndex: r.StudentIndex,
			StudentName:  s.studentName(r.StudentIndex),
			Status:       r.Status.String(),
		})
	}
	return &Report{Session: session, Rows: rows, Summary: session.Summary()}, nil
}

func (s *Store) Summaries() []models.Summary {
	out := make([]models.Summary, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.Summary())
	}
	return out
}

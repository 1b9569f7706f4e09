package models

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headerCourse   = "COURSE:"
	headerDate     = "DATE:"
	headerTime     = "TIME:"
	headerDuration = "DURATION:"
	recordsMarker  = "ATTENDANCE_RECORDS:"
)

// Session is one lecture's attendance sheet.
type Session struct {
	CourseCode    string             `json:"course_code"`
	Date          string             `json:"date"`
	StartTime     string             `json:"start_time"`
	DurationHours int                `json:"duration_hours"`
	Records       []AttendanceRecord `json:"records"`
}

type CreateSessionRequest struct {
	CourseCode    string `json:"course_code" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours"`
}

type LoadSessionRequest struct {
	Filename string `json:"filename" binding:"required"`
}

type SessionListItem struct {
	Number     int    `json:"number"`
	CourseCode string `json:"course_code"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	Filename   string `json:"filename"`
}

func NewSession(course, date, startTime string, durationHours int) *Session {
	return &Session{
		CourseCode:    course,
		Date:          date,
		StartTime:     startTime,
		DurationHours: durationHours,
	}
}

// Filename derives the storage name, e.g. session_EEE227_2026_02_10.txt.
func (s *Session) Filename() string {
	return "session_" + s.CourseCode + "_" + strings.ReplaceAll(s.Date, "-", "_") + ".txt"
}

// Header is the one-line listing form of the session.
func (s *Session) Header() string {
	return fmt.Sprintf("%s - %s (%s)", s.CourseCode, s.Date, s.StartTime)
}

// InitializeRecords replaces all records with one Absent record per student,
// in roster order.
func (s *Session) InitializeRecords(students []Student) {
	s.Records = make([]AttendanceRecord, 0, len(students))
	for _, st := range students {
		s.Records = append(s.Records, NewAttendanceRecord(st.Index))
	}
}

// UpdateRecord sets the status of the first record for studentIndex. It
// returns false when the session holds no record for that student.
func (s *Session) UpdateRecord(studentIndex string, status Status) bool {
	for i := range s.Records {
		if s.Records[i].StudentIndex == studentIndex {
			s.Records[i].SetStatus(status)
			return true
		}
	}
	return false
}

// StatusOf returns the status of the first record for studentIndex, or
// Absent when the session holds no record for that student.
func (s *Session) StatusOf(studentIndex string) Status {
	for _, r := range s.Records {
		if r.StudentIndex == studentIndex {
			return r.Status
		}
	}
	return StatusAbsent
}

// AddRecord appends without checking for duplicates.
func (s *Session) AddRecord(r AttendanceRecord) {
	s.Records = append(s.Records, r)
}

// WriteTo writes the session file format: four header lines, the records
// marker, then one record per line.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	lines := []string{
		headerCourse + s.CourseCode,
		headerDate + s.Date,
		headerTime + s.StartTime,
		headerDuration + strconv.Itoa(s.DurationHours),
		recordsMarker,
	}
	for _, r := range s.Records {
		lines = append(lines, r.Line())
	}

	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range lines {
		c, err := bw.WriteString(line + "\n")
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ReadSession parses a session file. Header values are taken verbatim. Once
// the records marker is seen every non-empty line is a record. If no record
// was read the session is initialized from roster instead, so an empty file
// and a file whose records are missing load the same way.
func ReadSession(r io.Reader, roster []Student) (*Session, error) {
	s := &Session{}
	scanner := bufio.NewScanner(r)
	readingRecords := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == recordsMarker {
			readingRecords = true
			continue
		}
		if readingRecords {
			s.AddRecord(ParseAttendanceRecord(line))
			continue
		}

		switch {
		case strings.HasPrefix(line, headerCourse):
			s.CourseCode = line[len(headerCourse):]
		case strings.HasPrefix(line, headerDate):
			s.Date = line[len(headerDate):]
		case strings.HasPrefix(line, headerTime):
			s.StartTime = line[len(headerTime):]
		case strings.HasPrefix(line, headerDuration):
			d, err := strconv.Atoi(line[len(headerDuration):])
			if err != nil {
				return nil, fmt.Errorf("invalid duration %q: %w", line[len(headerDuration):], err)
			}
			s.DurationHours = d
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading session: %w", err)
	}

	if len(s.Records) == 0 {
		s.InitializeRecords(roster)
	}
	return s, nil
}

package models

import (
	"strings"
)

// Status is the single character attendance code stored on disk.
type Status byte

const (
	StatusPresent Status = 'P'
	StatusAbsent  Status = 'A'
	StatusLate    Status = 'L'
)

func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusLate:
		return "Late"
	default:
		return "Unknown"
	}
}

// Code returns the on-disk form of the status.
func (s Status) Code() string {
	return string([]byte{byte(s)})
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

func (s *Status) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = StatusAbsent
		return nil
	}
	*s = Status(text[0])
	return nil
}

// Valid reports whether s is one of P, A or L.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// ParseStatusInput reads an operator entry. Only the first character counts
// and it is matched case-insensitively.
func ParseStatusInput(input string) (Status, bool) {
	if input == "" {
		return 0, false
	}
	c := input[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	s := Status(c)
	return s, s.Valid()
}

// AttendanceRecord is one student's status inside a session.
type AttendanceRecord struct {
	StudentIndex string `json:"student_index"`
	Status       Status `json:"status"`
}

// NewAttendanceRecord returns an Absent record for the given student.
func NewAttendanceRecord(studentIndex string) AttendanceRecord {
	return AttendanceRecord{StudentIndex: studentIndex, Status: StatusAbsent}
}

func (r *AttendanceRecord) SetStatus(s Status) {
	r.Status = s
}

func (r AttendanceRecord) Line() string {
	return r.StudentIndex + "," + r.Status.Code()
}

// ParseAttendanceRecord splits a record line at the first comma and keeps the
// first character after it verbatim. Malformed lines decode to an Absent
// record with an empty index.
func ParseAttendanceRecord(line string) AttendanceRecord {
	idx, code, ok := strings.Cut(line, ",")
	if !ok {
		return AttendanceRecord{Status: StatusAbsent}
	}
	if code == "" {
		return AttendanceRecord{StudentIndex: idx, Status: StatusAbsent}
	}
	return AttendanceRecord{StudentIndex: idx, Status: Status(code[0])}
}

type MarkAttendanceRequest struct {
	// Marks maps student index to a status entry such as "P" or "l".
	Marks map[string]string `json:"marks" binding:"required"`
}

type AttendanceRow struct {
	StudentIndex string `json:"student_index"`
	StudentName  string `json:"student_name"`
	Status       string `json:"status"`
}

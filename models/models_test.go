package models

import (
	"bytes"
	"strings"
	"testing"
)

func TestStudent_LineRoundTrip(t *testing.T) {
	st := Student{Index: "EE2001", Name: "Kwame Mensah"}

	got := ParseStudent(st.Line())

	if got != st {
		t.Errorf("round trip changed student: got %+v, want %+v", got, st)
	}
}

func TestParseStudent_WithoutComma_ReturnsEmpty(t *testing.T) {
	got := ParseStudent("EE2001 Kwame")

	if got != (Student{}) {
		t.Errorf("expected empty student, got %+v", got)
	}
}

func TestParseStudent_SplitsAtFirstComma(t *testing.T) {
	got := ParseStudent("EE2001,Mensah, Kwame")

	if got.Index != "EE2001" || got.Name != "Mensah, Kwame" {
		t.Errorf("unexpected split: %+v", got)
	}
}

func TestParseAttendanceRecord(t *testing.T) {
	tests := []struct {
		line string
		want AttendanceRecord
	}{
		{"EE2001,P", AttendanceRecord{"EE2001", StatusPresent}},
		{"EE2002,L", AttendanceRecord{"EE2002", StatusLate}},
		{"EE2003,X", AttendanceRecord{"EE2003", Status('X')}},
		{"EE2004,", AttendanceRecord{"EE2004", StatusAbsent}},
		{"garbage", AttendanceRecord{"", StatusAbsent}},
	}

	for _, tt := range tests {
		if got := ParseAttendanceRecord(tt.line); got != tt.want {
			t.Errorf("ParseAttendanceRecord(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestStatus_UnknownCodeKeptVerbatim(t *testing.T) {
	r := AttendanceRecord{StudentIndex: "EE2001", Status: Status('X')}

	if r.Status.String() != "Unknown" {
		t.Errorf("expected Unknown, got %s", r.Status)
	}
	if r.Line() != "EE2001,X" {
		t.Errorf("expected code stored verbatim, got %q", r.Line())
	}
}

func TestParseStatusInput(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"P", StatusPresent, true},
		{"late", StatusLate, true},
		{"a", StatusAbsent, true},
		{"x", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseStatusInput(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseStatusInput(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSession_Filename(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)

	if got := s.Filename(); got != "session_EEE227_2026_02_10.txt" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestSession_InitializeRecords(t *testing.T) {
	roster := []Student{{"EE2001", "A"}, {"EE2002", "B"}, {"EE2003", "C"}}
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.AddRecord(AttendanceRecord{StudentIndex: "OLD", Status: StatusPresent})

	s.InitializeRecords(roster)

	if len(s.Records) != len(roster) {
		t.Fatalf("expected %d records, got %d", len(roster), len(s.Records))
	}
	for i, r := range s.Records {
		if r.StudentIndex != roster[i].Index || r.Status != StatusAbsent {
			t.Errorf("record %d = %+v, want %s Absent", i, r, roster[i].Index)
		}
	}
}

func TestSession_UpdateRecord(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.InitializeRecords([]Student{{"EE2001", "A"}, {"EE2002", "B"}})

	if !s.UpdateRecord("EE2002", StatusLate) {
		t.Fatal("expected update of known index to succeed")
	}
	if s.Records[0].Status != StatusAbsent || s.Records[1].Status != StatusLate {
		t.Errorf("unexpected records after update: %+v", s.Records)
	}

	before := append([]AttendanceRecord(nil), s.Records...)
	if s.UpdateRecord("EE9999", StatusPresent) {
		t.Error("expected update of unknown index to fail")
	}
	for i := range before {
		if s.Records[i] != before[i] {
			t.Errorf("record %d changed on failed update: %+v", i, s.Records[i])
		}
	}
}

func TestSession_StatusOf(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.InitializeRecords([]Student{{"EE2001", "A"}, {"EE2002", "B"}})
	s.UpdateRecord("EE2002", StatusLate)

	if got := s.StatusOf("EE2002"); got != StatusLate {
		t.Errorf("StatusOf(EE2002) = %s, want Late", got)
	}
	if got := s.StatusOf("EE9999"); got != StatusAbsent {
		t.Errorf("StatusOf(EE9999) = %s, want Absent", got)
	}
}

func TestSession_Summary(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.InitializeRecords([]Student{{"EE2001", "A"}, {"EE2002", "B"}})
	s.UpdateRecord("EE2002", StatusLate)

	sum := s.Summary()

	if sum.Total != 2 || sum.PresentPercent != 0 || sum.AbsentPercent != 50 || sum.LatePercent != 50 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}

func TestSession_SummaryTruncates(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.InitializeRecords([]Student{{"1", ""}, {"2", ""}, {"3", ""}})
	s.UpdateRecord("1", StatusPresent)
	s.UpdateRecord("2", StatusLate)

	sum := s.Summary()

	if sum.PresentPercent != 33 || sum.AbsentPercent != 33 || sum.LatePercent != 33 {
		t.Errorf("expected truncated 33/33/33, got %+v", sum)
	}
	total := sum.PresentPercent + sum.AbsentPercent + sum.LatePercent
	if total < 99 || total > 101 {
		t.Errorf("percent total %d out of range", total)
	}
}

func TestSession_SummaryEmpty(t *testing.T) {
	sum := NewSession("EEE227", "2026-02-10", "09:00", 2).Summary()

	if sum.Total != 0 || sum.PresentPercent != 0 || sum.AbsentPercent != 0 || sum.LatePercent != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
}

func TestSession_FileRoundTrip(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.InitializeRecords([]Student{{"EE2001", "A"}, {"EE2002", "B"}, {"EE2003", "C"}})
	s.UpdateRecord("EE2001", StatusPresent)
	s.UpdateRecord("EE2003", StatusLate)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	got, err := ReadSession(&buf, nil)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}

	if got.CourseCode != s.CourseCode || got.Date != s.Date || got.StartTime != s.StartTime || got.DurationHours != s.DurationHours {
		t.Errorf("header mismatch: got %+v", got)
	}
	if len(got.Records) != len(s.Records) {
		t.Fatalf("expected %d records, got %d", len(s.Records), len(got.Records))
	}
	for i := range s.Records {
		if got.Records[i] != s.Records[i] {
			t.Errorf("record %d = %+v, want %+v", i, got.Records[i], s.Records[i])
		}
	}
}

func TestSession_WriteToFormat(t *testing.T) {
	s := NewSession("EEE227", "2026-02-10", "09:00", 2)
	s.InitializeRecords([]Student{{"EE2001", "A"}})

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	want := "COURSE:EEE227\nDATE:2026-02-10\nTIME:09:00\nDURATION:2\nATTENDANCE_RECORDS:\nEE2001,A\n"
	if buf.String() != want {
		t.Errorf("unexpected file body:\n%s", buf.String())
	}
}

func TestReadSession_NoRecords_InitializesFromRoster(t *testing.T) {
	body := "COURSE:EEE227\nDATE:2026-02-10\nTIME:09:00\nDURATION:2\nATTENDANCE_RECORDS:\n\n"
	roster := []Student{{"EE2001", "A"}, {"EE2002", "B"}}

	got, err := ReadSession(strings.NewReader(body), roster)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Records) != 2 || got.Records[0].Status != StatusAbsent || got.Records[1].StudentIndex != "EE2002" {
		t.Errorf("expected roster fallback records, got %+v", got.Records)
	}
}

func TestReadSession_HeaderValuesVerbatim(t *testing.T) {
	body := "COURSE: EEE 227\nDATE:10/02/2026\nTIME:9am\nDURATION:3\nATTENDANCE_RECORDS:\nEE2001,P\n"

	got, err := ReadSession(strings.NewReader(body), nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CourseCode != " EEE 227" || got.Date != "10/02/2026" || got.StartTime != "9am" || got.DurationHours != 3 {
		t.Errorf("header not taken verbatim: %+v", got)
	}
}

func TestReadSession_BadDuration(t *testing.T) {
	body := "COURSE:EEE227\nDURATION:two\nATTENDANCE_RECORDS:\n"

	if _, err := ReadSession(strings.NewReader(body), nil); err == nil {
		t.Fatal("expected error for non-integer duration, got nil")
	}
}

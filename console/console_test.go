package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"attendance_app/db"
	"attendance_app/store"
)

func run(t *testing.T, dir string, lines ...string) (*store.Store, string) {
	t.Helper()
	st := store.New(db.NewFileRepository(dir))
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"

	if err := New(st, strings.NewReader(input), &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, out.String())
	}
	return st, out.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	return string(body)
}

func TestConsole_FullWorkflow(t *testing.T) {
	dir := t.TempDir()

	st, out := run(t, dir,
		"1", "1", "EE2001", "A", "1", "EE2002", "B", "1", "EE2001", "0",
		"2", "1", "EEE227", "2026-02-10", "09:00", "2", "0",
		"3", "1", "p", "x",
		"4", "1", "1", "Y", "0",
		"0",
	)

	for _, want := range []string{
		"No existing student data found. Starting fresh.",
		"Student registered successfully!",
		"Error: Student with index EE2001 already exists!",
		"Session created successfully!",
		"Invalid input. Keeping as Absent.",
		"Present: 1 (50%)",
		"Absent: 1 (50%)",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if len(st.Students()) != 2 {
		t.Errorf("expected 2 students, got %d", len(st.Students()))
	}

	if got := readFile(t, filepath.Join(dir, db.StudentsFile)); got != "EE2001,A\nEE2002,B\n" {
		t.Errorf("unexpected roster file %q", got)
	}
	session := readFile(t, filepath.Join(dir, "session_EEE227_2026_02_10.txt"))
	if !strings.Contains(session, "EE2001,P\nEE2002,A\n") {
		t.Errorf("unexpected session file:\n%s", session)
	}
}

func TestConsole_EndOfInputSaves(t *testing.T) {
	dir := t.TempDir()

	_, out := run(t, dir, "6")

	if !strings.Contains(out, "Demo data added successfully!") || !strings.Contains(out, "Goodbye!") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if got := readFile(t, filepath.Join(dir, db.StudentsFile)); !strings.HasPrefix(got, "EE2001,Kwame Mensah\n") {
		t.Errorf("unexpected roster file %q", got)
	}
}

func TestConsole_LoadsExistingRoster(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, db.StudentsFile), []byte("EE2001,A\nEE2002,B\n"), 0o644)

	st, out := run(t, dir, "0")

	if !strings.Contains(out, "Loaded 2 students") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if len(st.Students()) != 2 {
		t.Errorf("expected 2 students, got %d", len(st.Students()))
	}
}

func TestConsole_LoadSessionFromFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, db.StudentsFile), []byte("EE2001,A\n"), 0o644)
	body := "COURSE:EEE227\nDATE:2026-02-10\nTIME:09:00\nDURATION:2\nATTENDANCE_RECORDS:\nEE2001,L\n"
	os.WriteFile(filepath.Join(dir, "session_EEE227_2026_02_10.txt"), []byte(body), 0o644)

	st, out := run(t, dir, "5", "3", "session_EEE227_2026_02_10.txt", "3", "missing.txt", "0", "0")

	if !strings.Contains(out, "Session loaded successfully!") {
		t.Errorf("load not reported:\n%s", out)
	}
	if !strings.Contains(out, "Error: could not load session missing.txt") {
		t.Errorf("missing file not reported:\n%s", out)
	}
	if len(st.Sessions()) != 1 || st.Sessions()[0].Records[0].Status.String() != "Late" {
		t.Errorf("unexpected sessions: %+v", st.Sessions())
	}
}

func TestConsole_NoStudentsBlocksSession(t *testing.T) {
	_, out := run(t, t.TempDir(), "2", "1", "0", "3", "0")

	if !strings.Contains(out, "Error: No students registered.") {
		t.Errorf("missing no-students error:\n%s", out)
	}
	if !strings.Contains(out, "No sessions available.") {
		t.Errorf("missing no-sessions notice:\n%s", out)
	}
}

func TestConsole_InvalidSessionSelection(t *testing.T) {
	_, out := run(t, t.TempDir(), "6", "3", "9", "0")

	if !strings.Contains(out, "Invalid session selection!") {
		t.Errorf("missing invalid selection notice:\n%s", out)
	}
}

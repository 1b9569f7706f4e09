package console

import (
	"errors"
	"strconv"
	"strings"

	"attendance_app/db"
	"attendance_app/models"
	"attendance_app/store"
)

func (c *Console) registerStudent() {
	c.printf("\n--- REGISTER NEW STUDENT ---\n")
	index := c.readLine("Enter index number: ")
	if _, exists := c.store.SearchStudent(index); exists {
		c.printf("Error: Student with index %s already exists!\n", index)
		return
	}
	name := c.readLine("Enter student name: ")

	_, err := c.store.RegisterStudent(index, name)
	switch {
	case errors.Is(err, store.ErrDuplicateStudent):
		c.printf("Error: Student with index %s already exists!\n", index)
	case err != nil:
		c.printf("Student registered, but %v\n", err)
	default:
		c.printf("Student registered successfully!\n")
	}
}

func (c *Console) viewStudents() {
	c.printf("\n--- ALL REGISTERED STUDENTS ---\n")
	students := c.store.Students()
	if len(students) == 0 {
		c.printf("No students registered yet.\n")
		return
	}

	c.printf("%-15s%-25s\n", "Index Number", "Student Name")
	c.printf("%s\n", strings.Repeat("-", 40))
	for _, st := range students {
		c.printf("%-15s%-25s\n", st.Index, st.Name)
	}
	c.printf("\nTotal: %d students\n", len(students))
}

func (c *Console) searchStudent() {
	c.printf("\n--- SEARCH STUDENT ---\n")
	index := c.readLine("Enter index number to search: ")

	st, ok := c.store.SearchStudent(index)
	if !ok {
		c.printf("Student with index %s not found.\n", index)
		return
	}
	c.printf("\nSTUDENT FOUND:\nIndex: %s\nName: %s\n", st.Index, st.Name)
}

func (c *Console) createSession() {
	c.printf("\n--- CREATE NEW ATTENDANCE SESSION ---\n")
	if len(c.store.Students()) == 0 {
		c.printf("Error: No students registered. Please register students first.\n")
		return
	}

	course := c.readLine("Enter course code: ")
	date := c.readLine("Enter date (YYYY-MM-DD): ")
	startTime := c.readLine("Enter start time (HH:MM): ")
	hours, err := strconv.Atoi(strings.TrimSpace(c.readLine("Enter duration (hours): ")))
	if err != nil {
		c.printf("Invalid duration! Session not created.\n")
		return
	}

	session, err := c.store.CreateSession(course, date, startTime, hours)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("\nSession created successfully!\n")
	c.printSessionHeader(session)
}

func (c *Console) viewSessions() {
	c.printf("\n--- ALL ATTENDANCE SESSIONS ---\n")
	sessions := c.store.Sessions()
	if len(sessions) == 0 {
		c.printf("No sessions created yet.\n")
		return
	}
	for i, s := range sessions {
		c.printf("%d. %s\n", i+1, s.Header())
	}
}

// selectSession lists the sessions and reads a 1-based choice.
func (c *Console) selectSession() (int, bool) {
	if len(c.store.Sessions()) == 0 {
		c.printf("No sessions available. Please create a session first.\n")
		return 0, false
	}
	c.viewSessions()
	return c.readChoice("\nSelect session number: "), true
}

func (c *Console) markAttendance() {
	c.printf("\n--- MARK ATTENDANCE ---\n")
	number, ok := c.selectSession()
	if !ok {
		return
	}
	session, err := c.store.Session(number)
	if err != nil {
		c.printf("Invalid session selection!\n")
		return
	}

	c.printSessionHeader(session)
	c.printf("\nMark attendance for each student:\n(P = Present, A = Absent, L = Late)\n\n")

	outcomes, err := c.store.MarkAttendance(number, func(i int, st models.Student) string {
		entry := c.readLine(strconv.Itoa(i+1) + ". " + st.Index + " - " + st.Name + ": ")
		if _, ok := models.ParseStatusInput(entry); entry != "" && !ok {
			c.printf("  Invalid input. Keeping as %s.\n", session.StatusOf(st.Index))
		}
		return entry
	})
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, o := range outcomes {
		if o.Result == store.MarkNotInSession {
			c.printf("  %s is not part of this session.\n", o.Student.Index)
		}
	}
	c.printf("\nAttendance marked successfully!\n")
}

func (c *Console) viewReport() {
	c.printf("\n--- VIEW ATTENDANCE REPORT ---\n")
	number, ok := c.selectSession()
	if !ok {
		return
	}
	rep, err := c.store.Report(number)
	if err != nil {
		c.printf("Invalid session selection!\n")
		return
	}

	c.printSessionHeader(rep.Session)
	c.printf("\nATTENDANCE LIST:\n")
	c.printf("%-15s%-25s%-10s\n", "Index Number", "Student Name", "Status")
	c.printf("%s\n", strings.Repeat("-", 50))
	for _, row := range rep.Rows {
		c.printf("%-15s%-25s%-10s\n", row.StudentIndex, row.StudentName, row.Status)
	}

	answer := strings.TrimSpace(c.readLine("\nGenerate summary? (Y/N): "))
	if strings.HasPrefix(strings.ToUpper(answer), "Y") {
		c.printSummary(rep.Summary)
	}
}

func (c *Console) viewSummaries() {
	c.printf("\n--- ATTENDANCE SUMMARY ---\n")
	summaries := c.store.Summaries()
	if len(summaries) == 0 {
		c.printf("No sessions available.\n")
		return
	}
	for _, sum := range summaries {
		c.printSummary(sum)
	}
}

func (c *Console) saveStudents() {
	if err := c.store.SaveStudents(); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Students saved.\n")
}

func (c *Console) saveSessions() {
	saved, err := c.store.SaveAllSessions()
	for _, loc := range saved {
		c.printf("Session saved to: %s\n", loc)
	}
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("All sessions saved.\n")
}

func (c *Console) loadSession() {
	c.printf("\n--- LOAD SESSION FROM FILE ---\n")
	name := c.readLine("Enter session filename (e.g., session_EEE227_2026_02_10.txt): ")

	session, err := c.store.LoadSessionFromFile(name)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Session loaded successfully!\n")
	c.printSessionHeader(session)
}

func (c *Console) addDemoData() {
	c.printf("\nAdding demo data...\n")
	if _, err := db.SeedData(c.store); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Demo data added successfully!\n")
}

func (c *Console) printSessionHeader(s *models.Session) {
	c.printf("\n%s\n", rule)
	c.printf("SESSION: %s\n", s.CourseCode)
	c.printf("DATE: %s\n", s.Date)
	c.printf("TIME: %s (%d hours)\n", s.StartTime, s.DurationHours)
	c.printf("%s\n", rule)
}

func (c *Console) printSummary(sum models.Summary) {
	c.printf("\nATTENDANCE SUMMARY:\n%s\n", rule)
	c.printf("Course: %s (%s)\n", sum.CourseCode, sum.Date)
	c.printf("Total Students: %d\n", sum.Total)
	c.printf("Present: %d (%d%%)\n", sum.Present, sum.PresentPercent)
	c.printf("Absent: %d (%d%%)\n", sum.Absent, sum.AbsentPercent)
	c.printf("Late: %d (%d%%)\n", sum.Late, sum.LatePercent)
	c.printf("%s\n", rule)
}

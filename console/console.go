// Package console drives the store from a line-based text menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"attendance_app/store"
)

const rule = "=========================================="

// Console reads operator input line by line. End of input behaves like
// choosing Exit from the main menu.
type Console struct {
	store *store.Store
	in    *bufio.Reader
	out   io.Writer
	eof   bool
}

func New(st *store.Store, in io.Reader, out io.Writer) *Console {
	return &Console{store: st, in: bufio.NewReader(in), out: out}
}

// Run loads the roster, serves the main menu until Exit, and flushes the
// store before returning.
func (c *Console) Run() error {
	c.printf("%s\n  DIGITAL ATTENDANCE SYSTEM\n%s\n", rule, rule)
	c.loadRoster()

	for {
		c.mainMenu()
		choice := c.readChoice("Enter your choice: ")
		if c.eof {
			choice = 0
		}
		switch choice {
		case 1:
			c.studentMenu()
		case 2:
			c.sessionMenu()
		case 3:
			c.markAttendance()
		case 4:
			c.reportsMenu()
		case 5:
			c.fileMenu()
		case 6:
			c.addDemoData()
		case 0:
			c.printf("\nSaving data before exit...\n")
			err := c.store.Close()
			if err != nil {
				c.printf("Error: %v\n", err)
			}
			c.printf("Goodbye!\n")
			return err
		default:
			c.printf("Invalid choice! Please try again.\n")
		}
	}
}

func (c *Console) loadRoster() {
	n, err := c.store.LoadStudents()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		c.printf("No existing student data found. Starting fresh.\n")
	case err != nil:
		c.printf("Error: %v\n", err)
	default:
		c.printf("Loaded %d students\n", n)
	}
}

func (c *Console) mainMenu() {
	c.printf("\n%s\n    DIGITAL ATTENDANCE SYSTEM\n%s\n", rule, rule)
	c.printf("1. Student Management\n")
	c.printf("2. Attendance Session Management\n")
	c.printf("3. Mark Attendance\n")
	c.printf("4. Reports and Summary\n")
	c.printf("5. File Operations\n")
	c.printf("6. Add Demo Data (for testing)\n")
	c.printf("0. Exit\n")
	c.printf("%s\n", rule)
	c.printf("Registered Students: %d\n", len(c.store.Students()))
	c.printf("Active Sessions: %d\n", len(c.store.Sessions()))
	c.printf("%s\n", rule)
}

// subMenu loops over a numbered menu until 0 or end of input.
func (c *Console) subMenu(title string, items []string, actions []func()) {
	for {
		c.printf("\n--- %s ---\n", title)
		for i, item := range items {
			c.printf("%d. %s\n", i+1, item)
		}
		c.printf("0. Back to Main Menu\n")

		choice := c.readChoice("Enter choice: ")
		if c.eof || choice == 0 {
			return
		}
		if choice < 1 || choice > len(actions) {
			c.printf("Invalid choice!\n")
			continue
		}
		actions[choice-1]()
	}
}

func (c *Console) studentMenu() {
	c.subMenu("STUDENT MANAGEMENT",
		[]string{"Register New Student", "View All Students", "Search Student by Index"},
		[]func(){c.registerStudent, c.viewStudents, c.searchStudent})
}

func (c *Console) sessionMenu() {
	c.subMenu("SESSION MANAGEMENT",
		[]string{"Create New Lecture Session", "View All Sessions"},
		[]func(){c.createSession, c.viewSessions})
}

func (c *Console) reportsMenu() {
	c.subMenu("REPORTS AND SUMMARY",
		[]string{"View Attendance Report for Session", "View Attendance Summary"},
		[]func(){c.viewReport, c.viewSummaries})
}

func (c *Console) fileMenu() {
	c.subMenu("FILE OPERATIONS",
		[]string{"Save All Students to File", "Save All Sessions to Files", "Load Session from File"},
		[]func(){c.saveStudents, c.saveSessions, c.loadSession})
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine prompts and returns the next line without its line ending.
func (c *Console) readLine(prompt string) string {
	c.printf("%s", prompt)
	if c.eof {
		return ""
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		c.eof = true
	}
	return strings.TrimRight(line, "\r\n")
}

// readChoice returns -1 for anything that is not an integer.
func (c *Console) readChoice(prompt string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.readLine(prompt)))
	if err != nil {
		return -1
	}
	return n
}

package db

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"attendance_app/models"
)

// StudentsFile is the roster file name inside the data directory.
const StudentsFile = "students.txt"

// FileRepository keeps the roster and each session as plain text files in Dir.
type FileRepository struct {
	Dir string
}

func NewFileRepository(dir string) *FileRepository {
	if dir == "" {
		dir = "."
	}
	return &FileRepository{Dir: dir}
}

// ErrUnsafeName is returned for names that are absolute or contain a ".."
// element, since they could resolve outside Dir.
var ErrUnsafeName = errors.New("file name must stay inside the data directory")

func (r *FileRepository) path(name string) (string, error) {
	if !filepath.IsLocal(name) || slices.Contains(strings.Split(filepath.ToSlash(name), "/"), "..") {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return filepath.Join(r.Dir, name), nil
}

// SaveStudents overwrites the roster file, one "index,name" line per student.
func (r *FileRepository) SaveStudents(students []models.Student) error {
	p, err := r.path(StudentsFile)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("error opening roster file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, st := range students {
		if _, err := w.WriteString(st.Line() + "\n"); err != nil {
			return fmt.Errorf("error writing roster file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing roster file: %w", err)
	}
	return f.Close()
}

// LoadStudents reads the roster file, skipping blank lines. A missing file is
// reported as an error wrapping fs.ErrNotExist.
func (r *FileRepository) LoadStudents() ([]models.Student, error) {
	p, err := r.path(StudentsFile)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("error opening roster file: %w", err)
	}
	defer f.Close()

	students := []models.Student{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		students = append(students, models.ParseStudent(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading roster file: %w", err)
	}
	return students, nil
}

// SaveSession overwrites the session's derived file. A write that fails
// halfway leaves the partial file in place.
func (r *FileRepository) SaveSession(session *models.Session) (string, error) {
	p, err := r.path(session.Filename())
	if err != nil {
		return "", err
	}
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("error opening session file: %w", err)
	}
	defer f.Close()

	if _, err := session.WriteTo(f); err != nil {
		return "", fmt.Errorf("error writing session file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error writing session file: %w", err)
	}
	return p, nil
}

// LoadSession reads a session file by its name relative to Dir.
func (r *FileRepository) LoadSession(name string, roster []models.Student) (*models.Session, error) {
	p, err := r.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("error opening session file: %w", err)
	}
	defer f.Close()

	return models.ReadSession(f, roster)
}

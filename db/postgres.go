package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"

	"attendance_app/models"

	_ "github.com/lib/pq"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN builds the connection URL. User and password are escaped, so they may
// contain any characters.
func (cfg Config) DSN() string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Initialize opens and pings a Postgres connection.
func Initialize(cfg Config) (*sql.DB, error) {
	psqlInfo := cfg.DSN()

	log.Printf("Connecting to database %s at %s:%d", cfg.DBName, cfg.Host, cfg.Port)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}

// ErrSessionNotFound is returned when no stored session has the requested name.
var ErrSessionNotFound = errors.New("session not found")

// PostgresRepository stores the same data as FileRepository in three tables.
// Sessions are keyed by their derived filename so both backends accept the
// same names.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SaveStudents(students []models.Student) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM students`); err != nil {
		tx.Rollback()
		return fmt.Errorf("error clearing students: %w", err)
	}

	for i, st := range students {
		_, err = tx.Exec(
			`INSERT INTO students (position, index_number, name) VALUES ($1, $2, $3)`,
			i, st.Index, st.Name,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error saving student %s: %w", st.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) LoadStudents() ([]models.Student, error) {
	rows, err := r.db.Query(`
        SELECT index_number, name
        FROM students
        ORDER BY position
    `)
	if err != nil {
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.Index, &st.Name); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func (r *PostgresRepository) SaveSession(session *models.Session) (string, error) {
	name := session.Filename()

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = tx.Exec(`
        INSERT INTO attendance_sessions (filename, course_code, date, start_time, duration_hours)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (filename) DO UPDATE
        SET course_code = EXCLUDED.course_code,
            date = EXCLUDED.date,
            start_time = EXCLUDED.start_time,
            duration_hours = EXCLUDED.duration_hours
    `, name, session.CourseCode, session.Date, session.StartTime, session.DurationHours)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("error saving session: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM attendance_records WHERE session_filename = $1`, name); err != nil {
		tx.Rollback()
		return "", fmt.Errorf("error clearing session records: %w", err)
	}

	for i, rec := range session.Records {
		_, err = tx.Exec(`
            INSERT INTO attendance_records (session_filename, position, student_index, status)
            VALUES ($1, $2, $3, $4)
        `, name, i, rec.StudentIndex, rec.Status.Code())
		if err != nil {
			tx.Rollback()
			return "", fmt.Errorf("error saving record for %s: %w", rec.StudentIndex, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("error committing transaction: %w", err)
	}
	return name, nil
}

func (r *PostgresRepository) LoadSession(name string, roster []models.Student) (*models.Session, error) {
	s := &models.Session{}
	err := r.db.QueryRow(`
        SELECT course_code, date, start_time, duration_hours
        FROM attendance_sessions
        WHERE filename = $1
    `, name).Scan(&s.CourseCode, &s.Date, &s.StartTime, &s.DurationHours)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching session: %w", err)
	}

	rows, err := r.db.Query(`
        SELECT student_index, status
        FROM attendance_records
        WHERE session_filename = $1
        ORDER BY position
    `, name)
	if err != nil {
		return nil, fmt.Errorf("error fetching session records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var index, code string
		if err := rows.Scan(&index, &code); err != nil {
			return nil, fmt.Errorf("error scanning record: %w", err)
		}
		s.AddRecord(models.ParseAttendanceRecord(index + "," + code))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error fetching session records: %w", err)
	}

	if len(s.Records) == 0 {
		s.InitializeRecords(roster)
	}
	return s, nil
}

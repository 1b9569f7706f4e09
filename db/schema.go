package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create students table
CREATE TABLE IF NOT EXISTS students (
    position INTEGER NOT NULL,
    index_number VARCHAR(50) NOT NULL,
    name VARCHAR(255) NOT NULL,
    created_at DATE DEFAULT CURRENT_DATE
);

-- Create attendance_sessions table
CREATE TABLE IF NOT EXISTS attendance_sessions (
    filename VARCHAR(255) PRIMARY KEY,
    course_code VARCHAR(50) NOT NULL,
    date VARCHAR(20) NOT NULL,
    start_time VARCHAR(20) NOT NULL,
    duration_hours INTEGER NOT NULL DEFAULT 0,
    created_at DATE DEFAULT CURRENT_DATE
);

-- Create attendance_records table
CREATE TABLE IF NOT EXISTS attendance_records (
    id SERIAL PRIMARY KEY,
    session_filename VARCHAR(255) NOT NULL,
    position INTEGER NOT NULL,
    student_index VARCHAR(50) NOT NULL,
    status CHAR(1) NOT NULL DEFAULT 'A',
    FOREIGN KEY (session_filename) REFERENCES attendance_sessions(filename) ON DELETE CASCADE
);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}

package models

import "strings"

// Student is a roster entry. Index is the identity key.
type Student struct {
	Index string `json:"index"`
	Name  string `json:"name"`
}

type RegisterStudentRequest struct {
	Index string `json:"index" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// Line encodes the student as one roster file line. Names are not escaped,
// so a comma in the name will split differently on the way back in.
func (s Student) Line() string {
	return s.Index + "," + s.Name
}

// ParseStudent splits a roster line at the first comma. A line without a
// comma yields an empty student.
func ParseStudent(line string) Student {
	idx, name, ok := strings.Cut(line, ",")
	if !ok {
		return Student{}
	}
	return Student{Index: idx, Name: name}
}

package db

import (
	"errors"
	"fmt"

	"attendance_app/models"
	"attendance_app/store"
)

var demoStudents = []models.Student{
	{Index: "EE2001", Name: "Kwame Mensah"},
	{Index: "EE2002", Name: "Ama Boateng"},
	{Index: "EE2003", Name: "Kojo Asare"},
	{Index: "EE2004", Name: "Esi Ampofo"},
	{Index: "EE2005", Name: "Yaw Ofori"},
}

var demoMarks = map[string]models.Status{
	"EE2001": models.StatusPresent,
	"EE2002": models.StatusLate,
	"EE2003": models.StatusPresent,
	"EE2004": models.StatusAbsent,
	"EE2005": models.StatusPresent,
}

// SeedData registers the demo roster, creates one marked demo session and
// saves both. Demo students already on the roster are skipped.
func SeedData(st *store.Store) (*models.Session, error) {
	for _, s := range demoStudents {
		_, err := st.RegisterStudent(s.Index, s.Name)
		if errors.Is(err, store.ErrDuplicateStudent) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error seeding students: %w", err)
		}
	}

	session, err := st.CreateSession("EEE227", "2026-02-10", "09:00", 2)
	if err != nil {
		return nil, fmt.Errorf("error seeding session: %w", err)
	}
	for _, s := range demoStudents {
		session.UpdateRecord(s.Index, demoMarks[s.Index])
	}

	if _, err := st.SaveSession(session); err != nil {
		return session, fmt.Errorf("error seeding session: %w", err)
	}
	return session, nil
}

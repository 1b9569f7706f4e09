package models

// Summary tallies the statuses of a session. Records with an unknown code are
// not counted in any bucket, Total included.
type Summary struct {
	CourseCode     string `json:"course_code"`
	Date           string `json:"date"`
	Total          int    `json:"total"`
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	Late           int    `json:"late"`
	PresentPercent int    `json:"present_percent"`
	AbsentPercent  int    `json:"absent_percent"`
	LatePercent    int    `json:"late_percent"`
}

func (s *Session) Summary() Summary {
	sum := Summary{CourseCode: s.CourseCode, Date: s.Date}
	for _, r := range s.Records {
		switch r.Status {
		case StatusPresent:
			sum.Present++
		case StatusAbsent:
			sum.Absent++
		case StatusLate:
			sum.Late++
		}
	}
	sum.Total = sum.Present + sum.Absent + sum.Late
	sum.PresentPercent = percent(sum.Present, sum.Total)
	sum.AbsentPercent = percent(sum.Absent, sum.Total)
	sum.LatePercent = percent(sum.Late, sum.Total)
	return sum
}

// percent truncates.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return count * 100 / total
}

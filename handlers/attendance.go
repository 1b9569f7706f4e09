package handlers

import (
	"net/http"

	"attendance_app/models"
	"attendance_app/store"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	store *store.Store
}

func NewAttendanceHandler(st *store.Store) *AttendanceHandler {
	return &AttendanceHandler{store: st}
}

func (h *AttendanceHandler) GetReport(c *gin.Context) {
	n, ok := sessionNumber(c)
	if !ok {
		return
	}
	report, err := h.store.Report(n)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AttendanceHandler) GetSummary(c *gin.Context) {
	n, ok := sessionNumber(c)
	if !ok {
		return
	}
	session, err := h.store.Session(n)
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Summary())
}

func (h *AttendanceHandler) GetSummaries(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Summaries())
}

// MarkAttendance applies one entry per roster student. Students missing from
// the request keep their current status.
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	n, ok := sessionNumber(c)
	if !ok {
		return
	}
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcomes, err := h.store.MarkAttendance(n, func(_ int, st models.Student) string {
		return req.Marks[st.Index]
	})
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"attendance_app/models"
	"attendance_app/store"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// sessionNumber parses :number and writes the error response itself.
func sessionNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session number must be an integer"})
		return 0, false
	}
	return n, true
}

func sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNoSessions), errors.Is(err, store.ErrInvalidSelection):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.store.CreateSession(req.CourseCode, req.Date, req.StartTime, req.DurationHours)
	if errors.Is(err, store.ErrNoStudents) {
		c.JSON(http.StatusConflict, gin.H{"error": "No students registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"number":  len(h.store.Sessions()),
		"session": session,
	})
}

func (h *SessionHandler) GetSessions(c *gin.Context) {
	sessions := h.store.Sessions()
	items := make([]models.SessionListItem, 0, len(sessions))
	for i, s := range sessions {
		items = append(items, models.SessionListItem{
			Number:     i + 1,
			CourseCode: s.CourseCode,
			Date:       s.Date,
			StartTime:  s.StartTime,
			Filename:   s.Filename(),
		})
	}
	c.JSON(http.StatusOK, items)
}

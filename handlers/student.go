package handlers

import (
	"errors"
	"log"
	"net/http"

	"attendance_app/models"
	"attendance_app/store"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	store *store.Store
}

func NewStudentHandler(st *store.Store) *StudentHandler {
	return &StudentHandler{store: st}
}

func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	var req models.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.store.RegisterStudent(req.Index, req.Name)
	if errors.Is(err, store.ErrDuplicateStudent) {
		c.JSON(http.StatusConflict, gin.H{"error": "Student with this index already exists"})
		return
	}
	if err != nil {
		// The student is on the roster; only the save failed.
		log.Printf("Error saving roster: %v", err)
		c.JSON(http.StatusCreated, gin.H{"student": student, "warning": "Roster could not be saved"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"student": student})
}

func (h *StudentHandler) GetStudents(c *gin.Context) {
	students := h.store.Students()
	if students == nil {
		students = make([]models.Student, 0)
	}
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, ok := h.store.SearchStudent(c.Param("index"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, student)
}

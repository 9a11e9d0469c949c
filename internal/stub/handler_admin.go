package stub

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var validStatuses = map[string]bool{
	"available": true,
	"in_use":    true,
	"broken":    true,
}

// GetAdminMachines handles GET /api/admin/machines, returning machines
// with the last user's name resolved.
func (h *Handler) GetAdminMachines(c *gin.Context) {
	if _, err := h.authAdmin(c); err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	type row struct {
		WashingMachine
		LastUsedByName *string
	}
	var rows []row
	err := h.db.Model(&WashingMachine{}).
		Select("washing_machines.*, users.username AS last_used_by_name").
		Joins("LEFT JOIN users ON users.id = washing_machines.last_used_by").
		Order("washing_machines.id").
		Scan(&rows).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to get machines")
		return
	}

	list := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		m := machineJSON(r.WashingMachine)
		if r.LastUsedByName != nil {
			m["last_used_by_name"] = *r.LastUsedByName
		}
		list = append(list, m)
	}
	c.JSON(http.StatusOK, gin.H{"machines": list})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateMachineStatus handles PUT /api/admin/machines/{id}/status. Any
// transition between the known states is allowed.
func (h *Handler) UpdateMachineStatus(c *gin.Context) {
	if _, err := h.authAdmin(c); err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	machineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid machine ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validStatuses[req.Status] {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var machine WashingMachine
	if err := h.db.First(&machine, machineID).Error; err != nil {
		fail(c, http.StatusNotFound, "Machine not found")
		return
	}

	if err := h.db.Model(&machine).Update("status", req.Status).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	h.bustCache()
	c.JSON(http.StatusOK, gin.H{"message": "Machine status updated successfully"})
}

type addMachineRequest struct {
	MachineName string `json:"machine_name"`
}

// AddMachine handles POST /api/admin/machines.
func (h *Handler) AddMachine(c *gin.Context) {
	if _, err := h.authAdmin(c); err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req addMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.MachineName) == "" {
		fail(c, http.StatusBadRequest, "Machine name is required")
		return
	}

	machine := WashingMachine{
		MachineName: strings.TrimSpace(req.MachineName),
		Status:      "available",
	}
	if err := h.db.Create(&machine).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add machine")
		return
	}

	h.bustCache()
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Machine added successfully",
		"machine_id": machine.ID,
	})
}

// GetAllBookings handles GET /api/admin/bookings, returning every booking
// joined with its owner and machine.
func (h *Handler) GetAllBookings(c *gin.Context) {
	if _, err := h.authAdmin(c); err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	type row struct {
		Booking
		Username    string
		StudentID   string
		MachineName string
	}
	var rows []row
	err := h.db.Model(&Booking{}).
		Select("bookings.*, users.username AS username, users.student_id AS student_id, washing_machines.machine_name AS machine_name").
		Joins("JOIN users ON users.id = bookings.user_id").
		Joins("JOIN washing_machines ON washing_machines.id = bookings.machine_id").
		Order("bookings.start_time DESC").
		Scan(&rows).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to get bookings")
		return
	}

	list := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		list = append(list, gin.H{
			"id":           r.ID,
			"username":     r.Username,
			"student_id":   r.StudentID,
			"machine_name": r.MachineName,
			"start_time":   r.StartTime,
			"end_time":     r.EndTime,
			"status":       r.Status,
			"created_at":   r.Booking.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

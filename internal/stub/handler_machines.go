package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func machineJSON(m WashingMachine) gin.H {
	var lastUsed any
	if m.LastUsedTime != nil {
		lastUsed = m.LastUsedTime.UTC().Format(time.RFC3339)
	}
	return gin.H{
		"id":             m.ID,
		"machine_name":   m.MachineName,
		"status":         m.Status,
		"last_used_by":   m.LastUsedBy,
		"last_used_time": lastUsed,
	}
}

// GetMachines handles GET /api/machines.
func (h *Handler) GetMachines(c *gin.Context) {
	var machines []WashingMachine
	if err := h.db.Order("id").Find(&machines).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to get machines")
		return
	}

	list := make([]gin.H, 0, len(machines))
	for _, m := range machines {
		list = append(list, machineJSON(m))
	}
	c.JSON(http.StatusOK, gin.H{"machines": list})
}

// GetMachineBookings handles GET /api/machines/{id}/bookings, returning the
// machine's active bookings joined with their owners.
func (h *Handler) GetMachineBookings(c *gin.Context) {
	machineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid machine ID")
		return
	}

	var machine WashingMachine
	if err := h.db.First(&machine, machineID).Error; err != nil {
		fail(c, http.StatusNotFound, "Machine not found")
		return
	}

	type row struct {
		Booking
		Username  string
		StudentID string
	}
	var rows []row
	err = h.db.Model(&Booking{}).
		Select("bookings.*, users.username AS username, users.student_id AS student_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.machine_id = ? AND bookings.status IN ?", machineID, []string{"pending", "confirmed"}).
		Order("bookings.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to get machine bookings")
		return
	}

	list := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		list = append(list, gin.H{
			"id":         r.ID,
			"username":   r.Username,
			"student_id": r.StudentID,
			"start_time": r.StartTime,
			"end_time":   r.EndTime,
			"status":     r.Status,
			"created_at": r.Booking.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"machine_name": machine.MachineName,
		"bookings":     list,
	})
}

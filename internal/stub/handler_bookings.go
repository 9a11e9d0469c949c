package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	MachineID int64  `json:"machine_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CreateBooking handles POST /api/bookings. It rejects overlapping slots
// and enforces the one-slot-per-ten-days rule the original backend had,
// then flips the machine to in_use and records the booking's user as its
// last user.
func (h *Handler) CreateBooking(c *gin.Context) {
	user, err := h.authUser(c)
	if err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MachineID == 0 || req.StartTime == "" || req.EndTime == "" {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	var machine WashingMachine
	if err := h.db.First(&machine, req.MachineID).Error; err != nil {
		fail(c, http.StatusNotFound, "Machine not found")
		return
	}
	if machine.Status != "available" {
		fail(c, http.StatusBadRequest, "Machine is not available")
		return
	}

	// ISO UTC strings compare correctly lexicographically.
	var conflicts int64
	err = h.db.Model(&Booking{}).
		Where("machine_id = ? AND status IN ?", req.MachineID, []string{"pending", "confirmed"}).
		Where("start_time < ? AND end_time > ?", req.EndTime, req.StartTime).
		Count(&conflicts).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Booking failed")
		return
	}
	if conflicts > 0 {
		fail(c, http.StatusBadRequest, "Time slot conflicts with existing booking")
		return
	}

	now := time.Now().UTC()
	horizon := now.Add(10 * 24 * time.Hour)
	var upcoming int64
	err = h.db.Model(&Booking{}).
		Where("user_id = ? AND status IN ?", user.ID, []string{"pending", "confirmed"}).
		Where("start_time BETWEEN ? AND ?", now.Format("2006-01-02T15:04:05.000Z"), horizon.Format("2006-01-02T15:04:05.000Z")).
		Count(&upcoming).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Booking failed")
		return
	}
	if upcoming >= 1 {
		fail(c, http.StatusBadRequest, "You can only book one slot in the next 10 days")
		return
	}

	booking := Booking{
		UserID:    user.ID,
		MachineID: req.MachineID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    "pending",
	}
	if err := h.db.Create(&booking).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	updates := map[string]any{
		"status":         "in_use",
		"last_used_by":   user.ID,
		"last_used_time": now,
	}
	if err := h.db.Model(&machine).Updates(updates).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	h.bustCache()
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking created successfully",
		"booking_id": booking.ID,
	})
}

// GetUserBookings handles GET /api/bookings/user/{id}. Unlike the other
// catalog reads this one requires a valid bearer: the client probes it to
// re-validate a restored user session, so an expired credential has to be
// rejected here. Only the owner or an admin may read a user's bookings.
func (h *Handler) GetUserBookings(c *gin.Context) {
	caller, err := h.authUser(c)
	if err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if caller.ID != userID && caller.Role != "admin" {
		fail(c, http.StatusForbidden, "Access denied")
		return
	}

	type row struct {
		Booking
		MachineName string
	}
	var rows []row
	err = h.db.Model(&Booking{}).
		Select("bookings.*, washing_machines.machine_name AS machine_name").
		Joins("JOIN washing_machines ON washing_machines.id = bookings.machine_id").
		Where("bookings.user_id = ?", userID).
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
			"machine_name": r.MachineName,
			"start_time":   r.StartTime,
			"end_time":     r.EndTime,
			"status":       r.Status,
			"created_at":   r.Booking.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// CancelBooking handles DELETE /api/bookings/{id}. Only the owner may
// cancel, and completed bookings stay immutable.
func (h *Handler) CancelBooking(c *gin.Context) {
	user, err := h.authUser(c)
	if err != nil {
		fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var booking Booking
	if err := h.db.Where("id = ? AND user_id = ?", bookingID, user.ID).First(&booking).Error; err != nil {
		fail(c, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.Status == "completed" {
		fail(c, http.StatusBadRequest, "Cannot cancel completed booking")
		return
	}

	if err := h.db.Model(&booking).Update("status", "cancelled").Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	// Free the machine if this was its active booking.
	var remaining int64
	h.db.Model(&Booking{}).
		Where("machine_id = ? AND status IN ?", booking.MachineID, []string{"pending", "confirmed"}).
		Count(&remaining)
	if remaining == 0 {
		h.db.Model(&WashingMachine{}).
			Where("id = ? AND status = ?", booking.MachineID, "in_use").
			Update("status", "available")
	}

	h.bustCache()
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

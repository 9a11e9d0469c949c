package stub

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type registerRequest struct {
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type loginRequest struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

type adminLoginRequest struct {
	AdminID  string `json:"admin_id"`
	Password string `json:"password"`
}

type googleAuthRequest struct {
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

func identityJSON(u *User) gin.H {
	return gin.H{
		"id":         u.ID,
		"student_id": u.StudentID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
	}
}

func (h *Handler) issueToken(u *User) string {
	token, err := IssueToken(h.jwtSecret, u.ID, u.Role)
	if err != nil {
		log.Printf("failed to issue token for user %d: %v", u.ID, err)
		return ""
	}
	return token
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" || req.Username == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	var existing User
	if err := h.db.Where("student_id = ?", req.StudentID).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "Student ID already registered")
		return
	}

	user := User{
		StudentID: req.StudentID,
		Username:  req.Username,
		Password:  HashPassword(req.Password),
		Role:      "user",
	}
	if err := h.db.Create(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user_id": user.ID,
	})
}

// Login handles POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Student ID and password are required")
		return
	}

	var user User
	err := h.db.Where("student_id = ? AND role = ?", req.StudentID, "user").First(&user).Error
	if err != nil || user.Password != HashPassword(req.Password) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   h.issueToken(&user),
		"user":    identityJSON(&user),
	})
}

// AdminLogin handles POST /api/admin/login.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AdminID == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Admin ID and password are required")
		return
	}

	var admin User
	err := h.db.Where("student_id = ? AND role = ?", req.AdminID, "admin").First(&admin).Error
	if err != nil || admin.Password != HashPassword(req.Password) {
		fail(c, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"token":   h.issueToken(&admin),
		"admin":   identityJSON(&admin),
	})
}

// GoogleLogin handles POST /api/google-login. The client has already
// decoded the assertion and enforced the institutional domain; the stub
// trusts the derived identity the way the original backend trusted its
// verified token payload.
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" {
		fail(c, http.StatusBadRequest, "Student ID is required")
		return
	}

	var user User
	err := h.db.Where("student_id = ? AND role = ?", req.StudentID, "user").First(&user).Error
	if err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	// Backfill a missing email from the assertion.
	if user.Email == "" && req.Email != "" {
		user.Email = req.Email
		if err := h.db.Model(&user).Update("email", req.Email).Error; err != nil {
			log.Printf("failed to backfill email for user %d: %v", user.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Google login successful",
		"token":   h.issueToken(&user),
		"user":    identityJSON(&user),
	})
}

// GoogleRegister handles POST /api/google-register.
func (h *Handler) GoogleRegister(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" || req.Email == "" {
		fail(c, http.StatusBadRequest, "Student ID and email are required")
		return
	}

	var existing User
	if err := h.db.Where("student_id = ?", req.StudentID).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "Student ID already registered")
		return
	} else if err != gorm.ErrRecordNotFound {
		fail(c, http.StatusInternalServerError, "Google registration failed")
		return
	}

	username := req.Username
	if username == "" {
		username = req.Name
	}
	user := User{
		StudentID: req.StudentID,
		Username:  username,
		Password:  "google_auth",
		Email:     req.Email,
		Role:      "user",
	}
	if err := h.db.Create(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Google registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Google registration successful",
		"token":   h.issueToken(&user),
		"user":    identityJSON(&user),
	})
}

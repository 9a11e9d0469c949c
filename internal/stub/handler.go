package stub

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// Handler holds shared dependencies for the stub API handlers.
type Handler struct {
	db        *gorm.DB
	jwtSecret string
	responses *cache.Cache
}

// NewHandler creates a stub API handler.
func NewHandler(db *gorm.DB, jwtSecret string, responses *cache.Cache) *Handler {
	return &Handler{db: db, jwtSecret: jwtSecret, responses: responses}
}

// bustCache drops cached GET responses after a mutation.
func (h *Handler) bustCache() {
	h.responses.Flush()
}

// authUser resolves the Authorization bearer to a user row. Signed tokens
// are verified; a bare numeric id is accepted for compatibility with the
// original client contract.
func (h *Handler) authUser(c *gin.Context) (*User, error) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if raw == "" {
		return nil, errors.New("missing bearer credential")
	}

	var userID int64
	if id, _, err := ParseToken(h.jwtSecret, raw); err == nil {
		userID = id
	} else if id, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil {
		userID = id
	} else {
		return nil, errors.New("invalid bearer credential")
	}

	var user User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("unknown user")
	}
	return &user, nil
}

// authAdmin resolves the bearer and requires the admin role.
func (h *Handler) authAdmin(c *gin.Context) (*User, error) {
	user, err := h.authUser(c)
	if err != nil {
		return nil, err
	}
	if user.Role != "admin" {
		return nil, errors.New("admin access required")
	}
	return user, nil
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stonevault-backend/internal/models"
)

// CookieName identifies the session cookie.
const CookieName = "sid"

const localsKey = "identity"

var ErrNotFound = errors.New("session not found or expired")

// Identity is the snapshot bound to a session at login. It is the only
// ambient state handlers read; services receive it as an explicit value.
type Identity struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (i *Identity) IsAdmin() bool { return i.Role == models.RoleAdmin }

// Store persists sessions in the sessions table, one row per SID.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Create opens a new session for the identity and returns its SID.
func (s *Store) Create(ident *Identity) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	sid := base64.RawURLEncoding.EncodeToString(raw)

	data, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("failed to encode session data: %w", err)
	}

	record := models.Session{
		SID:       sid,
		Data:      datatypes.JSON(data),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sid, nil
}

// Get resolves a SID to its identity. Expired rows are treated as
// missing and deleted opportunistically.
func (s *Store) Get(sid string) (*Identity, error) {
	if sid == "" {
		return nil, ErrNotFound
	}

	var record models.Session
	if err := s.db.First(&record, "sid = ?", sid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if time.Now().After(record.ExpiresAt) {
		s.db.Delete(&models.Session{}, "sid = ?", sid)
		return nil, ErrNotFound
	}

	var ident Identity
	if err := json.Unmarshal(record.Data, &ident); err != nil {
		return nil, fmt.Errorf("failed to decode session data: %w", err)
	}
	return &ident, nil
}

// Destroy removes the session row. Unknown SIDs are a no-op.
func (s *Store) Destroy(sid string) error {
	return s.db.Delete(&models.Session{}, "sid = ?", sid).Error
}

// TTL returns the configured session lifetime, used for cookie expiry.
func (s *Store) TTL() time.Duration { return s.ttl }

// StartSweep runs an hourly goroutine that deletes expired sessions.
func (s *Store) StartSweep(done chan struct{}) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				result := s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
				if result.Error != nil {
					slog.Error("session sweep failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("session sweep completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}

// FromCtx returns the identity attached by the session middleware, or
// nil for anonymous requests.
func FromCtx(c *fiber.Ctx) *Identity {
	ident, _ := c.Locals(localsKey).(*Identity)
	return ident
}

// Attach stores the identity on the request context.
func Attach(c *fiber.Ctx, ident *Identity) {
	c.Locals(localsKey, ident)
}

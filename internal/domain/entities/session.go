package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a logged-in browser session. The opaque token is
// what the session cookie carries; everything else lives server-side.
type Session struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Token      string     `json:"-" gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"not null;index"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`

	IPAddress *string `json:"ip_address,omitempty" gorm:"type:varchar(45)"`
	UserAgent *string `json:"user_agent,omitempty" gorm:"type:text"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// NewSession creates a session for the user with a fresh random token.
func NewSession(userID uint, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired checks if session is expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid checks if session is valid (not expired and not revoked)
func (s *Session) IsValid() bool {
	if s == nil {
		return false
	}
	return !s.IsExpired() && s.RevokedAt == nil
}

// Revoke revokes the session
func (s *Session) Revoke() {
	now := time.Now().UTC()
	s.RevokedAt = &now
}

// UpdateLastUsed updates the last used timestamp
func (s *Session) UpdateLastUsed() {
	now := time.Now().UTC()
	s.LastUsedAt = &now
}

// WithDeviceInfo adds client information
func (s *Session) WithDeviceInfo(ip, userAgent string) *Session {
	if ip != "" {
		s.IPAddress = &ip
	}
	if userAgent != "" {
		s.UserAgent = &userAgent
	}
	return s
}

package domain

import "time"

// ToolType selects which generator template a generation uses.
type ToolType string

const (
	ToolContent     ToolType = "content"
	ToolScript      ToolType = "script"
	ToolRap         ToolType = "rap"
	ToolAdCopy      ToolType = "ad-copy"
	ToolSocialMedia ToolType = "social-media"
	ToolStory       ToolType = "story"
)

// ToolTypes lists all recognized tools in registry order.
func ToolTypes() []ToolType {
	return []ToolType{ToolContent, ToolScript, ToolRap, ToolAdCopy, ToolSocialMedia, ToolStory}
}

// IsValidToolType reports whether t is one of the recognized tools.
func IsValidToolType(t ToolType) bool {
	switch t {
	case ToolContent, ToolScript, ToolRap, ToolAdCopy, ToolSocialMedia, ToolStory:
		return true
	}
	return false
}

// Tier is the subscription level controlling generation quota.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusDisabled UserStatus = "disabled"
)

// Generation is a persisted unit of (input, output) for one generation event.
// Records are immutable after creation; the only mutation is deletion.
type Generation struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"ownerId"`
	ToolType  ToolType          `json:"toolType"`
	Input     map[string]string `json:"input"`
	Output    string            `json:"output"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Profile holds subscription and display data for one user.
type Profile struct {
	UserID    string    `json:"userId"`
	Tier      Tier      `json:"tier"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

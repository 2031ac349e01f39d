package model

import (
	"encoding/json"
	"time"
)

// User represents a registered player.
type User struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	ProviderID  string    `json:"provider_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Match represents one human-versus-bot duel.
type Match struct {
	ID          string     `json:"id"`
	CreatorID   string     `json:"creator_id"`
	Status      string     `json:"status"` // waiting, active, finished
	Language    string     `json:"language"`
	Difficulty  string     `json:"difficulty"`
	BotStrategy string     `json:"bot_strategy"`
	Winner      string     `json:"winner,omitempty"` // human, bot, or empty for a draw
	Secret      string     `json:"-"`                // never serialized to clients
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// GuessRecord is one persisted guess with its scored feedback row.
type GuessRecord struct {
	ID          string          `json:"id"`
	MatchID     string          `json:"match_id"`
	Participant string          `json:"participant"` // human or bot
	Guess       string          `json:"guess"`
	Feedback    json.RawMessage `json:"feedback"` // hints.Row JSON
	Turn        int             `json:"turn"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Package model defines the core session data types.
package model

import "time"

// BlockType tags what kind of content a block carries.
type BlockType string

const (
	// BlockFlow is a narrative step in the session flow.
	BlockFlow BlockType = "FLOW"
	// BlockTimeline is a time-boxed schedule slot.
	BlockTimeline BlockType = "TIMELINE"
)

// ValidBlockTypes are the allowed block types.
var ValidBlockTypes = map[BlockType]bool{
	BlockFlow:     true,
	BlockTimeline: true,
}

// Session represents a stored session with its schedule blocks.
type Session struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Date          string    `json:"date" yaml:"date"`
	Summary       string    `json:"summary" yaml:"summary"`
	Goals         []string  `json:"goals" yaml:"goals"`
	Prerequisites []string  `json:"prerequisites" yaml:"prerequisites"`
	Published     bool      `json:"published" yaml:"published"`
	Location      string    `json:"location,omitempty" yaml:"location,omitempty"`
	Presenter     string    `json:"presenter,omitempty" yaml:"presenter,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
	Blocks        []Block   `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	BlockCount    int       `json:"block_count" yaml:"block_count"`
}

// Block is one ordered unit of a session schedule.
type Block struct {
	ID          string    `json:"id" yaml:"id"`
	SessionID   string    `json:"session_id" yaml:"session_id"`
	Order       int       `json:"order" yaml:"order"`
	Type        BlockType `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	StartTime   string    `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty" yaml:"end_time,omitempty"`
}

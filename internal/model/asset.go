package model

import "time"

// AssetKind classifies a session file.
type AssetKind string

const (
	AssetSessionSlide AssetKind = "SESSION_SLIDE"
	AssetLabSlide     AssetKind = "LAB_SLIDE"
	AssetCode         AssetKind = "CODE"
	AssetEtc          AssetKind = "ETC"
)

// ValidAssetKinds are the allowed asset kinds.
var ValidAssetKinds = map[AssetKind]bool{
	AssetSessionSlide: true,
	AssetLabSlide:     true,
	AssetCode:         true,
	AssetEtc:          true,
}

// Asset is the metadata of a file attached to a session. The file bytes live
// wherever StorageKey points; sessionkit never reads or writes them.
type Asset struct {
	ID          string    `json:"id" yaml:"id"`
	SessionID   string    `json:"session_id" yaml:"session_id"`
	Kind        AssetKind `json:"kind" yaml:"kind"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	FileName    string    `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	MimeType    string    `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Size        int64     `json:"size" yaml:"size"`
	StorageKey  string    `json:"storage_key,omitempty" yaml:"storage_key,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Submission is a student's hand-in for a session: a GitHub link, a file
// asset, or both.
type Submission struct {
	ID             string    `json:"id" yaml:"id"`
	SessionID      string    `json:"session_id" yaml:"session_id"`
	SubmitterName  string    `json:"submitter_name,omitempty" yaml:"submitter_name,omitempty"`
	SubmitterEmail string    `json:"submitter_email,omitempty" yaml:"submitter_email,omitempty"`
	GithubURL      string    `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	FileAssetID    string    `json:"file_asset_id,omitempty" yaml:"file_asset_id,omitempty"`
	Message        string    `json:"message,omitempty" yaml:"message,omitempty"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

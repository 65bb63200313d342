package session

import (
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/creait/sessionkit/internal/model"
	"github.com/creait/sessionkit/internal/store"
)

// MaxFileSize caps a single asset.
const MaxFileSize = 50 << 20

// AllowedExtensions lists the file types accepted as assets.
var AllowedExtensions = []string{
	".pdf", ".pptx", ".ppt", ".key",
	".zip", ".tar.gz",
	".py", ".ipynb", ".ts", ".js", ".tsx", ".jsx",
	".png", ".jpg", ".jpeg", ".gif", ".svg",
	".md", ".txt", ".csv",
}

// FileExtension returns the allowed extension name ends with, or "" when
// none matches. Multi-part extensions such as .tar.gz are recognized.
func FileExtension(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}

// MimeType guesses a content type from the file name.
func MimeType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}

// ValidateAsset rejects asset metadata that could not be served back.
func ValidateAsset(p store.AssetParams) error {
	if strings.TrimSpace(p.SessionID) == "" {
		return &ValidationError{Field: "session_id", Message: "세션을 선택해주세요"}
	}
	if !model.ValidAssetKinds[p.Kind] {
		return &ValidationError{Field: "kind", Message: fmt.Sprintf("알 수 없는 자료 종류: %q", p.Kind)}
	}
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Message: "자료 제목을 입력해주세요"}
	}
	if p.FileName == "" {
		return nil
	}
	if FileExtension(p.FileName) == "" {
		return &ValidationError{Field: "file_name", Message: fmt.Sprintf("허용되지 않는 파일 형식입니다: %s", filepath.Ext(p.FileName))}
	}
	if p.Size > MaxFileSize {
		return &ValidationError{Field: "size", Message: "파일 크기는 50MB 이하여야 합니다"}
	}
	return nil
}

// ValidateSubmission requires a GitHub link, a file asset, or both.
func ValidateSubmission(p store.SubmissionParams) error {
	if strings.TrimSpace(p.SessionID) == "" {
		return &ValidationError{Field: "session_id", Message: "세션을 선택해주세요"}
	}
	if p.GithubURL != "" {
		u, err := url.Parse(p.GithubURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ValidationError{Field: "github_url", Message: "올바른 URL을 입력해주세요"}
		}
		if !strings.Contains(p.GithubURL, "github.com") {
			return &ValidationError{Field: "github_url", Message: "GitHub URL이어야 합니다"}
		}
	}
	if p.GithubURL == "" && p.FileAssetID == "" {
		return &ValidationError{Field: "github_url", Message: "GitHub URL 또는 파일 중 하나를 제출해주세요"}
	}
	return nil
}

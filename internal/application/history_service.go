package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// HistoryService records validation runs per project, stamped with the commit
// the snapshot was taken at when the project is a git repository.
type HistoryService struct {
	history domain.RunHistory
	git     domain.GitInfo
	now     func() time.Time
}

func NewHistoryService(history domain.RunHistory, git domain.GitInfo) *HistoryService {
	return &HistoryService{history: history, git: git, now: time.Now}
}

// Record appends a run entry for report.
func (s *HistoryService) Record(projectPath, sceneFile string, report domain.ValidationReport) (domain.RunEntry, error) {
	entry := domain.RunEntry{
		Timestamp: s.now().Format(time.RFC3339),
		SceneFile: relativeTo(projectPath, sceneFile),
		AssetType: string(report.AssetType),
		Status:    report.Status,
		Errors:    report.Errors,
		Warnings:  report.Warnings,
	}
	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			entry.CommitHash = hash
		}
	}
	if err := s.history.Save(projectPath, entry); err != nil {
		return entry, fmt.Errorf("saving history: %w", err)
	}
	return entry, nil
}

// Entries returns the recorded runs, oldest first.
func (s *HistoryService) Entries(projectPath string) ([]domain.RunEntry, error) {
	entries, err := s.history.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}

func relativeTo(base, path string) string {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return path
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

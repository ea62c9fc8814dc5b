package application_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/assetkraft/internal/application"
	"github.com/abdidvp/assetkraft/internal/domain"
)

type memHistory struct {
	entries []domain.RunEntry
	err     error
}

func (h *memHistory) Save(_ string, entry domain.RunEntry) error {
	if h.err != nil {
		return h.err
	}
	h.entries = append(h.entries, entry)
	return nil
}

func (h *memHistory) Load(string) ([]domain.RunEntry, error) {
	return h.entries, h.err
}

type fakeGit struct {
	repo bool
	hash string
	err  error
}

func (g fakeGit) IsGitRepo(string) bool             { return g.repo }
func (g fakeGit) CommitHash(string) (string, error) { return g.hash, g.err }

var failReport = domain.ValidationReport{
	Status:    domain.StatusFail,
	AssetType: domain.AssetTypeModel,
	Errors:    []string{domain.ValidatorUVLayers},
	Warnings:  []string{domain.ValidatorScale},
}

func TestHistoryService_Record(t *testing.T) {
	project := t.TempDir()
	hist := &memHistory{}
	svc := application.NewHistoryService(hist, fakeGit{repo: true, hash: "abc1234def"})

	entry, err := svc.Record(project, filepath.Join(project, "scenes", "robot.yaml"), failReport)
	require.NoError(t, err)

	assert.Equal(t, "scenes/robot.yaml", entry.SceneFile)
	assert.Equal(t, "model", entry.AssetType)
	assert.Equal(t, domain.StatusFail, entry.Status)
	assert.Equal(t, "abc1234def", entry.CommitHash)
	assert.Equal(t, []string{domain.ValidatorUVLayers}, entry.Errors)
	assert.NotEmpty(t, entry.Timestamp)
	assert.Equal(t, []domain.RunEntry{entry}, hist.entries)
}

func TestHistoryService_RecordWithoutGit(t *testing.T) {
	hist := &memHistory{}

	entry, err := application.NewHistoryService(hist, fakeGit{}).Record(".", "robot.yaml", failReport)
	require.NoError(t, err)
	assert.Empty(t, entry.CommitHash)

	entry, err = application.NewHistoryService(hist, fakeGit{repo: true, err: errors.New("no HEAD")}).Record(".", "robot.yaml", failReport)
	require.NoError(t, err)
	assert.Empty(t, entry.CommitHash)

	entry, err = application.NewHistoryService(hist, nil).Record(".", "robot.yaml", failReport)
	require.NoError(t, err)
	assert.Empty(t, entry.CommitHash)
	assert.Len(t, hist.entries, 3)
}

func TestHistoryService_Errors(t *testing.T) {
	svc := application.NewHistoryService(&memHistory{err: errors.New("disk full")}, nil)

	_, err := svc.Record(".", "robot.yaml", failReport)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving history: disk full")

	_, err = svc.Entries(".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading history")
}

func TestHistoryService_Entries(t *testing.T) {
	hist := &memHistory{entries: []domain.RunEntry{{Status: "pass"}, {Status: "fail"}}}
	entries, err := application.NewHistoryService(hist, nil).Entries(".")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

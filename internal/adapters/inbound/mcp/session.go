package mcp

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/mainthread"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/memgraph"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/scenefile"
	"github.com/abdidvp/assetkraft/internal/application"
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
)

// Session is one loaded scene exposed over MCP. Tool handlers run on the server's
// goroutines; every touch of the graph or the registry is queued on loop, whose
// Run owns both.
type Session struct {
	doc   *scenefile.Document
	cfg   domain.ProjectConfig
	files domain.FileProbe
	svc   *application.ValidationService
	loop  *mainthread.Loop
	log   *zap.Logger
}

// NewSession binds a loaded scene and project config to loop.
func NewSession(doc *scenefile.Document, cfg domain.ProjectConfig, loop *mainthread.Loop, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	files := scenefile.OSFiles{}
	svc, err := application.NewValidationService(cfg, validation.Env{Graph: doc.Graph, Files: files}, log)
	if err != nil {
		return nil, err
	}
	return &Session{doc: doc, cfg: cfg, files: files, svc: svc, loop: loop, log: log}, nil
}

// Export returns the export data stored with the scene, if any.
func (s *Session) Export() domain.ExportData {
	if s.doc.Export == nil {
		return domain.ExportData{}
	}
	return *s.doc.Export
}

func (s *Session) listValidators(ctx context.Context) ([]domain.ValidatorInfo, error) {
	var infos []domain.ValidatorInfo
	err := s.loop.Do(ctx, func() error {
		infos = s.svc.ListValidators()
		return nil
	})
	return infos, err
}

func (s *Session) validate(ctx context.Context, name string, data domain.ExportData) (domain.ValidationReport, error) {
	var report domain.ValidationReport
	var runErr error
	err := s.loop.Do(ctx, func() error {
		report, runErr = s.svc.Validate(name, data)
		return nil
	})
	if err != nil {
		return report, err
	}
	return report, runErr
}

// recordingGraph keeps the commands a fix applied to a working copy so they can
// be replayed onto the session graph.
type recordingGraph struct {
	domain.SceneGraph
	applied []domain.Command
}

func (g *recordingGraph) Apply(cmd domain.Command) error {
	if err := g.SceneGraph.Apply(cmd); err != nil {
		return err
	}
	g.applied = append(g.applied, cmd)
	return nil
}

// fix runs the remediation against a copy of the session graph off the loop, then
// sends the commands it issued to the loop one at a time and re-validates the
// session graph there. A dry run stops before anything is sent.
func (s *Session) fix(ctx context.Context, opts domain.FixOptions, data domain.ExportData) (domain.FixReport, error) {
	var snap memgraph.Snapshot
	if err := s.loop.Do(ctx, func() error {
		snap = s.doc.Graph.Snapshot()
		return nil
	}); err != nil {
		return domain.FixReport{}, err
	}

	work := &recordingGraph{SceneGraph: memgraph.FromSnapshot(snap)}
	svc, err := application.NewValidationService(s.cfg, validation.Env{Graph: work, Files: s.files}, s.log)
	if err != nil {
		return domain.FixReport{}, err
	}
	report, runErr := svc.Fix(opts, data)
	if opts.DryRun || errors.Is(runErr, domain.ErrUnknownValidator) {
		return report, runErr
	}

	for _, cmd := range work.applied {
		if err := s.loop.Apply(ctx, s.doc.Graph, cmd); err != nil {
			return report, fmt.Errorf("applying %s: %w", cmd, err)
		}
	}
	s.log.Debug("fix commands applied", zap.Int("commands", len(work.applied)))

	var afterErr error
	if err := s.loop.Do(ctx, func() error {
		report.After, afterErr = s.svc.Validate(opts.Only, data)
		return nil
	}); err != nil {
		return report, err
	}
	if runErr != nil {
		return report, runErr
	}
	return report, afterErr
}

func (s *Session) ignore(ctx context.Context, name string) (domain.ValidationReport, error) {
	var report domain.ValidationReport
	err := s.loop.Do(ctx, func() error {
		if err := s.svc.Ignore(name); err != nil {
			return err
		}
		report = s.svc.Report()
		return nil
	})
	return report, err
}

func (s *Session) results(ctx context.Context) (domain.ValidationReport, error) {
	var report domain.ValidationReport
	err := s.loop.Do(ctx, func() error {
		report = s.svc.Report()
		return nil
	})
	return report, err
}

func (s *Session) save(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = s.doc.Path
	}
	err := s.loop.Do(ctx, func() error {
		if err := s.doc.Save(path); err != nil {
			return fmt.Errorf("saving scene: %w", err)
		}
		return nil
	})
	return path, err
}

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/scenefile"
	"github.com/abdidvp/assetkraft/internal/application"
	"github.com/abdidvp/assetkraft/internal/domain"
	"github.com/abdidvp/assetkraft/internal/domain/validation"
	"github.com/abdidvp/assetkraft/internal/logging"
)

// exportFlags describe the export being validated. Flags override the export
// file, which overrides the export stored with the scene.
type exportFlags struct {
	file     string
	typ      string
	models   []string
	scene    string
	material string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "export", "", "YAML or JSON file with the export data")
	cmd.Flags().StringVar(&f.typ, "type", "", "Asset type: model, material or scene")
	cmd.Flags().StringSliceVar(&f.models, "models", nil, "Object names for a model export")
	cmd.Flags().StringVar(&f.scene, "scene", "", "Scene name for a scene export")
	cmd.Flags().StringVar(&f.material, "material", "", "Material name for a material export")
}

func (f *exportFlags) resolve(doc *scenefile.Document) (domain.ExportData, error) {
	var data domain.ExportData
	haveBase := false
	if doc.Export != nil {
		data = *doc.Export
		haveBase = true
	}
	if f.file != "" {
		fromFile, err := scenefile.LoadExportData(f.file)
		if err != nil {
			return domain.ExportData{}, err
		}
		data = fromFile
		haveBase = true
	}

	if f.typ != "" {
		data.Type = f.typ
	}
	if f.models != nil {
		data.Models = f.models
	}
	if f.scene != "" {
		data.Scene = f.scene
	}
	if f.material != "" {
		data.Material = f.material
	}

	if !haveBase && data.Type == "" {
		return domain.ExportData{}, fmt.Errorf("no export data: pass --type or --export, or store an export block in the scene")
	}
	return data, nil
}

// session is a loaded scene ready to validate.
type session struct {
	projectPath string
	doc         *scenefile.Document
	svc         *application.ValidationService
	log         *zap.Logger
}

func openSession(opts *globalOptions, scenePath string) (*session, error) {
	projectPath, err := filepath.Abs(opts.projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	doc, err := scenefile.Load(scenePath)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	svc, err := application.NewValidationService(cfg, validation.Env{Graph: doc.Graph, Files: scenefile.OSFiles{}}, log.Named(logging.ComponentValidation))
	if err != nil {
		return nil, err
	}
	return &session{projectPath: projectPath, doc: doc, svc: svc, log: log.Named(logging.ComponentCLI)}, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

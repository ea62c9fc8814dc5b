package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/assetkraft/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		skip  []string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .assetkraft.yaml configuration file",
		Long:  "Create a .assetkraft.yaml holding the default export limits, ready to be tuned for your pipeline.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			canonical := make([]string, 0, len(skip))
			for _, s := range skip {
				name, ok := domain.CanonicalValidatorName(s)
				if !ok {
					return fmt.Errorf("unknown validator %q", s)
				}
				canonical = append(canonical, name)
			}
			cfg := domain.ProjectConfig{Skip: canonical}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(canonical)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Validators to skip")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .assetkraft.yaml")

	return cmd
}

func generateConfig(skip []string) string {
	l := domain.DefaultLimits()

	var b strings.Builder
	b.WriteString("# assetkraft configuration\n\n")
	b.WriteString("limits:\n")
	fmt.Fprintf(&b, "  max_objects: %d\n", l.MaxObjects)
	fmt.Fprintf(&b, "  max_triangles: %d\n", l.MaxTriangles)
	fmt.Fprintf(&b, "  max_bones: %d\n", l.MaxBones)
	fmt.Fprintf(&b, "  max_animations: %d\n", l.MaxAnimations)
	fmt.Fprintf(&b, "  max_materials: %d\n", l.MaxMaterials)
	fmt.Fprintf(&b, "  max_texture_size: %d\n", l.MaxTextureSize)
	b.WriteString("\n")

	if len(skip) > 0 {
		b.WriteString("skip:\n")
		for _, s := range skip {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		b.WriteString("\n")
	}

	b.WriteString(`# Available validators:
`)
	for _, v := range domain.ValidValidators {
		fmt.Fprintf(&b, "#   %s\n", v)
	}
	b.WriteString(`
# severity:
#   Scale: error
#   Texture size: warning
`)
	return b.String()
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nadzri/plotplan/internal/engine"
	"github.com/nadzri/plotplan/internal/export"
	"github.com/nadzri/plotplan/internal/model"
	"github.com/nadzri/plotplan/internal/project"
)

// newGenerateCmd builds the `generate` command: load a site file, run the
// layout pipeline, print the summary, and write any requested exports.
func newGenerateCmd() *cobra.Command {
	var (
		pdfPath      string
		dxfPath      string
		schedulePath string
		labelsPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate <site-file>",
		Short: "Generate a floor layout from a site file",
		Long: `Generate reads a site description (JSON or TOML), packs the requested
rooms into the buildable area, and prints a summary of the resulting layout.
Use the export flags to also write the plan as a PDF floor plan, DXF drawing,
Excel room schedule, or QR label sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			site, err := project.LoadSite(args[0])
			if err != nil {
				return err
			}
			logger.Debug("site loaded", "file", args[0], "rooms", len(site.Rooms))

			plan, err := engine.New(site).Generate()
			if err != nil {
				var infeasible *model.InfeasibleSiteError
				if errors.As(err, &infeasible) {
					return fmt.Errorf("site is infeasible: %w", err)
				}
				return err
			}
			logger.Debug("layout generated",
				"placed", len(plan.Layout.Rooms),
				"unplaced", len(plan.Warnings),
				"coverage", fmt.Sprintf("%.1f%%", plan.Coverage()))

			fmt.Fprint(cmd.OutOrStdout(), Summary(plan))

			exports := []struct {
				path string
				kind string
				run  func(string, model.Plan) error
			}{
				{pdfPath, "PDF floor plan", export.ExportPDF},
				{dxfPath, "DXF drawing", export.ExportDXF},
				{schedulePath, "room schedule", export.ExportSchedule},
				{labelsPath, "label sheet", export.ExportLabels},
			}
			for _, e := range exports {
				if e.path == "" {
					continue
				}
				if err := e.run(e.path, plan); err != nil {
					return fmt.Errorf("failed to write %s: %w", e.kind, err)
				}
				logger.Info("export written", "kind", e.kind, "path", e.path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF floor plan to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "write a DXF drawing to this path")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "write an Excel room schedule to this path")
	cmd.Flags().StringVar(&labelsPath, "labels", "", "write a QR label sheet PDF to this path")

	return cmd
}

// newInitCmd builds the `init` command: write a starter site file.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <site-file>",
		Short: "Write a starter site file with the stock example",
		Long: `Init writes a site file (JSON or TOML, chosen by extension) describing
the stock example: a 14 x 24 m plot with a car porch, lounge, three bedrooms,
and a bath. Edit it and feed it to generate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if err := project.SaveSite(path, model.DefaultSite()); err != nil {
				return err
			}
			logger.Info("site file written", "path", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

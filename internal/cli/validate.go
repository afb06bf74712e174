package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [chart]",
		Short: "Check a chart document without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(path string) error {
	doc, err := chart.Load(path)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		if code := errors.GetCode(err); code != "" {
			printDetail("code: %s", code)
		}
		return fmt.Errorf("%s is not a valid chart", filepath.Base(path))
	}
	c.Logger.Debug("chart loaded", "path", path, "records", len(doc.Data.Values))

	printSuccess("%s is valid", filepath.Base(path))
	printKeyValue("shape", doc.Shape)
	printKeyValue("coordinate", doc.Coordinate.Type)
	printKeyValue("position", doc.Encode.Position)
	printKeyValue("records", fmt.Sprint(len(doc.Data.Values)))
	printKeyValue("canvas", fmt.Sprintf("%gx%g", doc.Width, doc.Height))
	printNewline()
	printNextStep("Render it", appName+" render "+path)
	return nil
}

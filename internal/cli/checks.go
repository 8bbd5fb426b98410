package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdvet/internal/logging"
	"github.com/yaklabco/mdvet/pkg/check"
)

const formatJSON = "json"

// checkInfo represents a check in JSON output.
type checkInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags,omitempty"`
}

func newChecksCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List available checks",
		Long: `List all available checks with their IDs, names, descriptions,
default severity, and whether they are enabled by default.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			checks := check.DefaultRegistry.Checks()

			if format == formatJSON {
				return outputChecksJSON(checks)
			}

			logger := logging.NewInteractive()

			if len(checks) == 0 {
				logger.Info("no checks registered")
				return nil
			}

			logger.Info("available checks")

			for _, c := range checks {
				enabled := "-"
				if c.DefaultEnabled() {
					enabled = "yes"
				}

				logger.Info(c.ID(),
					logging.FieldName, c.Name(),
					logging.FieldSeverity, c.DefaultSeverity(),
					"enabled", enabled,
					"tags", strings.Join(c.Tags(), ","),
					logging.FieldDescription, c.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputChecksJSON outputs checks as a JSON array.
func outputChecksJSON(checks []check.Check) error {
	infos := make([]checkInfo, 0, len(checks))
	for _, c := range checks {
		infos = append(infos, checkInfo{
			ID:          c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
			Severity:    string(c.DefaultSeverity()),
			Enabled:     c.DefaultEnabled(),
			Tags:        c.Tags(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding checks: %w", err)
	}
	return nil
}

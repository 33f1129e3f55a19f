package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/mrzname/internal/mrz"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <name>...",
	Short: "Show how names are transliterated and cleaned into MRZ form",
	Long: `Print the detected script, the Latin transliteration and the MRZ form of
each name given on the command line.

Examples:
  mrzname normalize "Иван Петров" "فاطمة علي" "José Müller"
  mrzname normalize --json "O'Brien"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().Bool("json", false, "Output as JSON")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	order, err := mrz.ParseCaseOrder(cfg.Extraction.CaseOrder)
	if err != nil {
		return err
	}
	cleaner := mrz.Cleaner{Order: order}

	results := make([]mrz.Inspection, 0, len(args))
	for _, name := range args {
		results = append(results, cleaner.Inspect(name))
	}

	if mustGetBool(cmd, "json") {
		return outputJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tSCRIPT\tLATIN\tMRZ")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Input, r.Script, r.Latin, r.MRZ)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func outputJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

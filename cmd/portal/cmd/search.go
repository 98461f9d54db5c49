package cmd

import (
	"encoding/json"
	"strings"

	"council-portal-api/internal/lookup"

	"github.com/spf13/cobra"
)

var searchResource string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search portal content from the terminal",
	Long: "Runs the same typo-tolerant search the site uses. Without --resource it searches " +
		"services, news and officials; with it, it filters one collection.",
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchResource, "resource", "r", "", "collection to filter: "+strings.Join(lookup.Resources, ", "))
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := openApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	q := strings.Join(args, " ")
	svc := lookup.New(a.content)

	var out any
	if searchResource == "" {
		out = svc.Global(cmd.Context(), q)
	} else {
		out, err = svc.Filter(cmd.Context(), searchResource, q)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gobedca/gobedca/pkg/bedca"
	errs "github.com/gobedca/gobedca/pkg/errors"
)

// foodsCommand creates the "foods" command listing the whole database.
func (c *CLI) foodsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List every food in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			client := c.newClient(cmd)

			prog := newProgress(logger)
			sp := newSpinner(cmd.Context(), "Fetching food list...")
			sp.Start()
			previews, err := client.ListAllFoods(cmd.Context())
			sp.Stop()
			if err != nil {
				return describeError(err)
			}
			prog.done(fmt.Sprintf("Fetched %d foods", len(previews)))

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), previews)
			}
			printPreviews(previews)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

// searchCommand creates the "search" command.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		langFlag string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search foods by name",
		Long:  `Search foods whose Spanish or English name contains the given text (substring match, handled by the upstream service).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if err := errs.ValidateSearchQuery(text); err != nil {
				return err
			}

			langArg := langFlag
			if langArg == "" {
				langArg = c.cfg.Language
			}
			lang, err := parseLanguage(langArg)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			client := c.newClient(cmd)

			prog := newProgress(logger)
			sp := newSpinner(cmd.Context(), fmt.Sprintf("Searching for %q...", text))
			sp.Start()
			previews, err := client.SearchFoodsByName(cmd.Context(), text, lang)
			sp.Stop()
			if err != nil {
				return describeError(err)
			}
			prog.done(fmt.Sprintf("Found %d foods", len(previews)))

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), previews)
			}
			if len(previews) == 0 {
				printInfo("No foods matched %q", text)
				return nil
			}
			printPreviews(previews)
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "lang", "l", "", "name language to match against: es or en (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

// printPreviews writes one aligned line per food: id, Spanish name, English name.
func printPreviews(previews []bedca.FoodPreview) {
	for _, p := range previews {
		fmt.Printf("%s  %s  %s\n",
			StyleDim.Render(fmt.Sprintf("%-6s", p.ID)),
			StyleValue.Render(fmt.Sprintf("%-45s", p.NameES)),
			StyleDim.Render(p.NameEN))
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError attaches a structured code to client errors so callers and
// scripts can tell "unknown id" from protocol or network breakage.
func describeError(err error) error {
	switch {
	case errors.Is(err, bedca.ErrNotFound):
		return errs.Wrap(errs.ErrCodeFoodNotFound, err, "no matching food")
	case errors.Is(err, bedca.ErrNetwork):
		return errs.Wrap(errs.ErrCodeNetwork, err, "BEDCA request failed")
	case errors.Is(err, bedca.ErrMalformedResponse):
		return errs.Wrap(errs.ErrCodeMalformedResponse, err, "BEDCA returned an unreadable response")
	}
	return err
}

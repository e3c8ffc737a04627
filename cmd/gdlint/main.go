// Package main provides the gdlint binary, which checks GDL rulesheets
// from the command line without going through a server.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vilterp/gdlint/pkg/games"
	"github.com/vilterp/gdlint/pkg/gdl"
	"github.com/vilterp/gdlint/pkg/parse"
	"github.com/vilterp/gdlint/pkg/validator"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gdlint",
		Short:         "static validator for game descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(batchCmd())
	cmd.AddCommand(fmtCmd())
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "validate rulesheet files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v validator.StaticValidator
			invalid := 0
			for _, path := range args {
				contents, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				warnings, err := v.CheckValidity(games.NewGame(path, string(contents)))
				if err != nil {
					fmt.Printf("%s: invalid: %s\n", path, err)
					invalid++
					continue
				}
				for _, warning := range warnings {
					fmt.Printf("%s: warning: %s\n", path, warning)
				}
				fmt.Printf("%s: ok (%d warnings)\n", path, len(warnings))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d rulesheets are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func batchCmd() *cobra.Command {
	var gamesDir string
	var skip []string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "validate every game in a repository directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := games.NewDirRepository(gamesDir)
			keys, err := repo.GameKeys()
			if err != nil {
				return err
			}

			skipped := map[string]bool{}
			for _, key := range skip {
				skipped[key] = true
			}

			type outcome struct {
				warnings []validator.Warning
				err      error
			}
			outcomes := make([]*outcome, len(keys))

			// The games are independent, so check them all at once.
			var group errgroup.Group
			for i, key := range keys {
				if skipped[key] {
					continue
				}
				i, key := i, key
				group.Go(func() error {
					game, err := repo.GetGame(key)
					if err != nil {
						return err
					}
					var v validator.StaticValidator
					warnings, err := v.CheckValidity(game)
					outcomes[i] = &outcome{warnings: warnings, err: err}
					return nil
				})
			}
			if err := group.Wait(); err != nil {
				return err
			}

			checked := 0
			invalid := 0
			for i, key := range keys {
				o := outcomes[i]
				if o == nil {
					fmt.Printf("%s: skipped\n", key)
					continue
				}
				checked++
				if o.err != nil {
					fmt.Printf("%s: invalid: %s\n", key, o.err)
					invalid++
					continue
				}
				for _, warning := range o.warnings {
					fmt.Printf("%s: warning: %s\n", key, warning)
				}
				fmt.Printf("%s: ok (%d warnings)\n", key, len(o.warnings))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d games are invalid", invalid, checked)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gamesDir, "games", "games", "directory of .kif rulesheets")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "game keys to skip")
	return cmd
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt FILE...",
		Short: "print rulesheets in a canonical layout",
		Long: `Parses rulesheets and prints them in a canonical layout: facts one
per line, each rule conjunct on its own line. Comments are not preserved.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				contents, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := parse.CheckParens(string(contents)); err != nil {
					return errors.Wrap(err, path)
				}
				description, err := parse.Parse(string(contents))
				if err != nil {
					return errors.Wrap(err, path)
				}
				fmt.Println(gdl.Format(description))
			}
			return nil
		},
	}
}

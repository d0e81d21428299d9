package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"assay/internal/driver"
	"assay/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files or dirs...]",
	Short: "Check assertion files",
	Long: `Check evaluates every assertion in the given *.assay files; directories
are searched recursively. Each failing assertion prints its diagram. The
command exits non-zero when any assertion fails or errors; canceled
assumptions do not affect the exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// defaultBindingsFile is consulted when --bindings is not given.
const defaultBindingsFile = "Assay.toml"

func init() {
	checkCmd.Flags().String("bindings", "", "TOML file with name=value bindings for the environment (default Assay.toml if present)")
	checkCmd.Flags().Int("parallel", 0, "number of files checked concurrently (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "re-check every file, ignoring cached results")
}

func runCheck(cmd *cobra.Command, args []string) error {
	bindingsPath, _ := cmd.Flags().GetString("bindings")
	jobs, _ := cmd.Flags().GetInt("parallel")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	paths, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no assertion files found")
	}

	opts := driver.Options{}
	if bindingsPath == "" {
		// Without --bindings, a local Assay.toml supplies the defaults.
		if _, statErr := os.Stat(defaultBindingsFile); statErr == nil {
			bindingsPath = defaultBindingsFile
		}
	}
	if bindingsPath != "" {
		opts.Bindings, err = driver.LoadBindings(bindingsPath)
		if err != nil {
			return err
		}
	}
	if !noCache {
		// A broken cache is not worth failing the run over.
		if cache, err := driver.OpenDiskCache("assay"); err == nil {
			opts.Cache = cache
		}
	}

	reports, err := driver.CheckFiles(cmd.Context(), paths, opts, jobs)
	if err != nil {
		return err
	}

	colorize := useColor(cmd, os.Stdout)
	printReports(reports, colorize, quiet)

	summary := ui.Summarize(reports)
	if !quiet {
		fmt.Println(summary.Banner(colorize))
	}
	if !summary.Ok() {
		// Failure details are already printed; the message would repeat them.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("assertions failed")
	}
	return nil
}

// collectFiles expands each argument: directories are walked for *.assay
// files, plain paths are taken as given.
func collectFiles(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := driver.ListAssertionFiles(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, nil
}

func printReports(reports []*driver.FileReport, colorize, quiet bool) {
	failTag := "FAIL"
	cancelTag := "SKIP"
	errTag := "ERROR"
	if colorize {
		failTag = color.New(color.FgRed, color.Bold).Sprint(failTag)
		cancelTag = color.New(color.FgYellow).Sprint(cancelTag)
		errTag = color.New(color.FgRed, color.Bold).Sprint(errTag)
	}

	for _, report := range reports {
		if report == nil {
			continue
		}
		for _, r := range report.Results {
			// Diagram messages open with a blank row and align under the
			// location line; plain summaries need a separating space.
			msg := r.Outcome.Message
			if !strings.HasPrefix(msg, "\n") {
				msg = " " + msg
			}
			switch {
			case r.Err != "":
				fmt.Printf("%s %s:%d: %s\n  %s\n", errTag, report.Path, r.Line, r.Source, r.Err)
			case !r.Ok():
				fmt.Printf("%s %s:%d%s\n", failTag, report.Path, r.Line, msg)
			case r.Assume && !r.Outcome.Ok() && !quiet:
				fmt.Printf("%s %s:%d%s\n", cancelTag, report.Path, r.Line, msg)
			}
		}
	}
}

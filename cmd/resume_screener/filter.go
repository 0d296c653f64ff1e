package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/filter"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/views"
)

var (
	filterDir          string
	filterRequirements string
	filterConfigPath   string
	filterVerbose      bool
)

// maxContextsPerKeyword caps how many context snippets the report prints
// per keyword.
const maxContextsPerKeyword = 2

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Screen a directory of resumes against a requirements file",
	Long:  `Screen every resume in a directory against a JSON requirements file and print a ranked text report with scores, experience checks and keyword evidence.`,
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterDir, "dir", "", "Directory of resumes to screen (required unless set in config)")
	filterCmd.Flags().StringVar(&filterRequirements, "requirements", "", "Path to requirements JSON file (required unless set in config)")
	filterCmd.Flags().StringVar(&filterConfigPath, "config", "", "Path to JSON config file")
	filterCmd.Flags().BoolVarP(&filterVerbose, "verbose", "v", false, "Print detailed screening information")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		ResumeDir:    filterDir,
		Requirements: filterRequirements,
	}
	if filterConfigPath != "" {
		fileCfg, err := config.LoadConfig(filterConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.ResumeDir == "" {
		return fmt.Errorf("--dir is required")
	}
	if cfg.Requirements == "" {
		return fmt.Errorf("--requirements is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	req, err := schemas.LoadRequirements(cfg.Requirements)
	if err != nil {
		return err
	}

	filt := filter.New(filter.Requirements{
		JobDescription: req.JobDescription,
		Mandatory:      req.Mandatory,
		Optional:       req.Optional,
		MinExperience:  req.MinExperience,
	})

	verbose := filterVerbose || cfg.Verbose
	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintRequirements(filt.Requirements())
	}

	results, err := filt.ProcessDir(cmd.Context(), cfg.ResumeDir)
	if err != nil {
		return err
	}

	if verbose {
		printer.PrintRankedResults(results)
		printer.PrintExperienceChecks(req.MinExperience, results)
	}

	printReport(os.Stdout, cfg.ResumeDir, filt.Requirements(), results)
	return nil
}

// printReport writes the ranked screening report.
func printReport(w io.Writer, dir string, req filter.Requirements, results []types.ResumeResult) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\nJob Requirements:\n%s\n%s\n", rule, req.JobDescription, rule)
	fmt.Fprintf(w, "\nProcessing resumes from: %s\n", dir)
	fmt.Fprintf(w, "Minimum Experience Required: %g years\n\n", req.MinExperience)

	if len(results) == 0 {
		fmt.Fprintln(w, "No resumes matched all requirements")
		return
	}

	fmt.Fprintf(w, "Found %d qualified resumes:\n\n", len(results))
	for rank, res := range results {
		status := "✓"
		if !res.ExperienceMet {
			found := "N/A"
			if res.Experience != nil {
				found = fmt.Sprintf("%g", *res.Experience)
			}
			status = fmt.Sprintf("✗ (Found: %s yrs)", found)
		}

		fmt.Fprintf(w, "%d. %s (Score: %.1f)\n", rank+1, res.Filename, res.Score)
		fmt.Fprintf(w, "   Experience: %s\n", status)
		fmt.Fprintln(w, "   Keyword Evidence:")
		for _, ks := range res.FoundSections {
			fmt.Fprintf(w, "     - %s (%d occurrences):\n", ks.Keyword, res.KeywordCounts[ks.Keyword])
			for i, context := range ks.Contexts {
				if i >= maxContextsPerKeyword {
					break
				}
				fmt.Fprintf(w, "       %d. %s\n", i+1, views.Snippet(context))
			}
		}
		fmt.Fprintln(w, "\n"+strings.Repeat("-", 50)+"\n")
	}
}

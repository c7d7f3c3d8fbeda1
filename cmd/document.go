package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldloom/datadoc/internal/dataset"
	"github.com/fieldloom/datadoc/internal/dictionary"
	"github.com/fieldloom/datadoc/internal/profile"
	"github.com/fieldloom/datadoc/internal/report"
	"github.com/fieldloom/datadoc/internal/utils"
)

var (
	docOutput     string
	docDelimiter  string
	docSheetName  string
	docSheetIndex int
	docThreshold  int
	docSampleSize int
	docSniffDepth int
	docSequential bool
)

var documentCmd = &cobra.Command{
	Use:   "document <data-file> <dictionary-file> <description-column>",
	Short: "Profile a dataset and write a Markdown documentation report",
	Long: `Profile every column of a CSV/TSV/XLSX data file and write a Markdown
report. The dictionary file supplies field definitions: its "Field" column
(or first column) holds field names, and <description-column> holds the
definition text. Random Samples sections are drawn without a fixed seed and
differ between runs; every other part of the report is deterministic.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, dictPath, descColumn := args[0], args[1], args[2]

		loadOpt := dataset.Options{SheetName: docSheetName, SheetIndex: docSheetIndex}
		switch docDelimiter {
		case "":
		case ",":
			loadOpt.Delimiter = ','
		case ";":
			loadOpt.Delimiter = ';'
		case "\t", "tab":
			loadOpt.Delimiter = '\t'
		default:
			return fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", docDelimiter)
		}

		data, err := dataset.Load(dataPath, loadOpt)
		if err != nil {
			return err
		}
		dict, err := dataset.Load(dictPath, dataset.Options{})
		if err != nil {
			return err
		}
		defs, err := dictionary.Build(dict, descColumn)
		if err != nil {
			return err
		}

		opt := profile.DefaultOptions()
		sequential := false
		if cfg != nil {
			if cfg.DistinctThreshold > 0 {
				opt.DistinctThreshold = cfg.DistinctThreshold
			}
			if cfg.SniffDepth > 0 {
				opt.SniffDepth = cfg.SniffDepth
			}
			if cfg.SampleSize > 0 {
				opt.SampleSize = cfg.SampleSize
			}
			sequential = cfg.Sequential
		}
		f := cmd.Flags()
		if f.Changed("distinct-threshold") && docThreshold > 0 {
			opt.DistinctThreshold = docThreshold
		}
		if f.Changed("sniff-depth") && docSniffDepth > 0 {
			opt.SniffDepth = docSniffDepth
		}
		if f.Changed("sample-size") && docSampleSize > 0 {
			opt.SampleSize = docSampleSize
		}
		if f.Changed("sequential") {
			sequential = docSequential
		}

		profiles := profile.New(defs, opt).Run(data, sequential)
		if debug {
			for _, p := range profiles {
				fmt.Fprintf(os.Stderr, "· %s: %s → %s (%s)\n", p.FieldName, p.CurrentType, p.Category, p.RecommendedType)
			}
		}

		md, err := report.Render(profiles)
		if err != nil {
			return err
		}

		out := docOutput
		if out == "" {
			if cfg != nil && cfg.OutputDefault != "" {
				out = cfg.OutputDefault
			} else {
				out = "data_documentation.md"
			}
		}
		if err := utils.SafeWriteFile(out, []byte(md)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Documentation written to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(documentCmd)
	documentCmd.Flags().StringVarP(&docOutput, "output", "o", "", "output Markdown file (default from config)")
	documentCmd.Flags().StringVar(&docDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (sniffed from extension if omitted)")
	documentCmd.Flags().StringVar(&docSheetName, "sheet-name", "", "XLSX: sheet name to document")
	documentCmd.Flags().IntVar(&docSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	documentCmd.Flags().IntVar(&docThreshold, "distinct-threshold", 20, "distinct-value count below which a domain is enumerable")
	documentCmd.Flags().IntVar(&docSampleSize, "sample-size", 5, "random sample size per qualifying column")
	documentCmd.Flags().IntVar(&docSniffDepth, "sniff-depth", 10, "leading non-null values inspected for nested JSON")
	documentCmd.Flags().BoolVar(&docSequential, "sequential", false, "profile columns one at a time instead of in parallel")
}

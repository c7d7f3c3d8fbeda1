package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/fieldloom/datadoc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set datadoc configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("output_default: %s\n", cfg.OutputDefault)
		fmt.Printf("distinct_threshold: %d\n", cfg.DistinctThreshold)
		fmt.Printf("sniff_depth: %d\n", cfg.SniffDepth)
		fmt.Printf("sample_size: %d\n", cfg.SampleSize)
		fmt.Printf("sequential: %t\n", cfg.Sequential)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_default":
			cfg.OutputDefault = val
		case "distinct_threshold":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for distinct_threshold: %v", val)
			}
			cfg.DistinctThreshold = i
		case "sniff_depth":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for sniff_depth: %v", val)
			}
			cfg.SniffDepth = i
		case "sample_size":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for sample_size: %v", val)
			}
			cfg.SampleSize = i
		case "sequential":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for sequential: %v", val)
			}
			cfg.Sequential = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

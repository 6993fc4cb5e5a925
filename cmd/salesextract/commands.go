package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/output"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/stores"
)

func newSampleCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample sales summary workbook in the expected layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := output.WriteSample(&buf); err != nil {
				return fmt.Errorf("failed to build sample: %w", err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "Sample_Sales_Summary_Format.xlsx", "Sample workbook path")
	return cmd
}

func newStoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List the store address table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			table := stores.Default()
			if cfg.Extract.StoresFile != "" {
				t, err := loadStores(cfg.Extract.StoresFile)
				if err != nil {
					return err
				}
				table = t
			}
			for _, n := range table.Numbers() {
				addr, _ := table.Lookup(n)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n, addr)
			}
			return nil
		},
	}
}

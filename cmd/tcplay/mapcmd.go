package main

import (
	"fmt"

	"github.com/kaizen365/tc-play"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map <mapping-name>",
	Short: "Create a device-mapper mapping for a TrueCrypt volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(tcplay.ActionMap)
		if err != nil {
			return err
		}
		cfg.MapName = args[0]

		desc, err := openVolume(cfg)
		if err != nil {
			return translateErr(err)
		}

		if err := tcplay.CreateMapping(cfg.MapName, desc); err != nil {
			return translateErr(err)
		}

		fmt.Println("All ok!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}

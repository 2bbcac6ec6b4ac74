package main

import (
	"fmt"
	"os"

	"github.com/kaizen365/tc-play"
	"github.com/spf13/cobra"
)

var (
	device        string
	systemDevice  string
	keyfiles      []string
	protectHidden bool
)

var rootCmd = &cobra.Command{
	Use:   "tcplay",
	Short: "Unlock TrueCrypt-format volumes and map them via device-mapper",
	Long: `tcplay derives the key-derivation and cipher combination that
protects a TrueCrypt volume header by trial decryption, then either
reports what it found or installs a device-mapper crypt target exposing
the decrypted volume as a new block device.`,
	Version: "0.2",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&device, "device", "d", "", "path to the volume to operate on (required)")
	rootCmd.PersistentFlags().StringVarP(&systemDevice, "system", "s", "", "disk path using whole-disk system encryption")
	rootCmd.PersistentFlags().StringArrayVarP(&keyfiles, "keyfile", "k", nil, "keyfile to mix into the passphrase (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&protectHidden, "protect-hidden", "e", false, "protect a hidden volume when mounting the outer volume (reserved)")
}

// Execute runs the root command; main.main calls this once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig assembles a tcplay.Config from the persistent flags
// shared by every subcommand.
func buildConfig(action tcplay.Action) (*tcplay.Config, error) {
	if device == "" {
		return nil, fmt.Errorf("-d/--device is required")
	}
	return &tcplay.Config{
		Action:        action,
		Device:        device,
		SystemDevice:  systemDevice,
		Keyfiles:      keyfiles,
		ProtectHidden: protectHidden,
	}, nil
}

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/gregor/pkg/core/version"
)

var (
	Version   = version.Platform
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	// no config needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gregor v%s\n", Version)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
		fmt.Printf("  Build Date: %s\n", BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Println()
		for _, name := range []string{"timex", "cli", "browser", "catalog"} {
			fmt.Printf("  %-10s  %s\n", name, version.ComponentVersion(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

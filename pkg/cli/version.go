package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/getmockd/igdmock/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show igdmock version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Version
		commit := version.Commit
		date := version.BuildDate

		if info, ok := debug.ReadBuildInfo(); ok {
			if v == "dev" {
				v = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if commit == "none" {
						commit = setting.Value
					}
				case "vcs.time":
					if date == "unknown" {
						date = setting.Value
					}
				case "vcs.modified":
					if setting.Value == "true" {
						commit += "-dirty"
					}
				}
			}
		}

		if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
			v = "v" + v
		}
		fmt.Printf("igdmock %s (%s, %s)\n", v, commit, date)
		fmt.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// BuildInfo carries the build identity the binary was linked with.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// RunVersion runs the version command after installing the given build
// identity.
func RunVersion(info BuildInfo, args []string) error {
	if info.Version != "" {
		version.Version = info.Version
	}
	if info.Commit != "" {
		version.Commit = info.Commit
	}
	if info.BuildDate != "" {
		version.BuildDate = info.BuildDate
	}
	return run("version", args)
}

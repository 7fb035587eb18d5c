package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the CLI version and the widget library version configured in fomantic.yaml.",
		Usage: "fomantic version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Fprintf(stdout, "fomantic CLI version %s (built %s)\n", Version, BuildTime)
	resolved, err := resolveConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Fomantic UI host: %s\n", resolved.HostVersion)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tyrepage/internal/app"
)

type genFlags struct {
	configArg        string
	outputDirArg     string
	zipArg           bool
	localBusinessArg bool
	noJSONLDArg      bool
	logFileArg       string
}

func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(normalizeArgs(os.Args[1:]))
	return root.Execute()
}

func NewRootCmd(stdout, stderr *os.File) *cobra.Command {
	flags := &genFlags{}
	showVersion := false

	root := &cobra.Command{
		Use:           "tyrepage [size_or_file ...]",
		Short:         "Generate SEO landing-page copy for tyre sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGen(stdout, flags, &showVersion),
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true
	bindGenFlags(root, flags)
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version information")

	genCmd := &cobra.Command{
		Use:           "gen [size_or_file ...]",
		Short:         "Generate page copy for the given sizes or input files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGen(stdout, flags, &showVersion),
	}
	root.AddCommand(genCmd)

	versionCmd := &cobra.Command{
		Use:           "version",
		Short:         "Print version information",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

func bindGenFlags(cmd *cobra.Command, flags *genFlags) {
	cmd.PersistentFlags().StringVar(&flags.configArg, "config", "", "config file path, default ~/.tyrepage/config.yaml")
	cmd.PersistentFlags().StringVarP(&flags.outputDirArg, "out", "o", "", "output directory, default current directory")
	cmd.PersistentFlags().BoolVar(&flags.zipArg, "zip", false, "pack the generated files into tyre-pages.zip")
	cmd.PersistentFlags().BoolVar(&flags.localBusinessArg, "local-business", false, "also write the batch-level LocalBusiness JSON-LD")
	cmd.PersistentFlags().BoolVar(&flags.noJSONLDArg, "no-jsonld", false, "skip all structured-data output")
	cmd.PersistentFlags().StringVar(&flags.logFileArg, "log-file", "", "NDJSON log file path")
}

func runGen(stdout *os.File, flags *genFlags, showVersion *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if showVersion != nil && *showVersion {
			printVersion(stdout)
			return nil
		}
		if len(args) == 0 {
			_ = cmd.Help()
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}

		res, err := app.Run(app.Options{
			Inputs:        args,
			ConfigPath:    flags.configArg,
			OutputDir:     flags.outputDirArg,
			Zip:           flags.zipArg,
			LocalBusiness: flags.localBusinessArg,
			NoJSONLD:      flags.noJSONLDArg,
			LogFile:       flags.logFileArg,
			CWD:           cwd,
			Stdout:        stdout,
			Stderr:        cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}

		finalLine := fmt.Sprintf("done: %d generated, %d failed, %d skipped", res.Succeeded, res.Failed, res.Skipped)
		if res.Failed > 0 {
			return fmt.Errorf(finalLine)
		}
		fmt.Fprintln(stdout, finalLine)
		return nil
	}
}

// normalizeArgs lets bare invocations like "tyrepage 225/45R19" behave
// as the gen subcommand.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	switch args[0] {
	case "gen", "help", "completion", "version":
		return args
	}
	if args[0] == "-h" || args[0] == "--help" || args[0] == "-v" || args[0] == "--version" {
		return args
	}
	if !containsPositionalSource(args) {
		return args
	}
	return append([]string{"gen"}, args...)
}

func containsPositionalSource(args []string) bool {
	valueFlags := map[string]struct{}{
		"--config": {}, "--out": {}, "-o": {}, "--log-file": {},
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return i+1 < len(args)
		}
		if _, ok := valueFlags[arg]; ok {
			i++
			continue
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return true
	}
	return false
}

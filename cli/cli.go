package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"unical/utils"
)

// buildParser constructs the go-flags parser over a fresh Options struct.
func buildParser() (*goflags.Parser, *Options) {
	var opts Options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "unical"
	parser.Usage = "[OPTIONS] [inputs...]"
	parser.LongDescription = "Unify and standardize multiple ICS files into one de-duplicated calendar."
	return parser, &opts
}

// Run is the main entry point for the unical CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and runs the merge.
func RunWithArgs(version string, args []string) error {
	parser, opts := buildParser()

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}
	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return err
	}

	if opts.Version {
		fmt.Printf("unical %s\n", version)
		return nil
	}

	cfg := utils.NewConfig()

	inputs := opts.Args.Inputs
	if len(inputs) == 0 {
		for _, path := range defaultInputs {
			if _, err := os.Stat(path); err == nil {
				inputs = append(inputs, path)
			}
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no input files provided and none of the default files exist in the current directory")
		}
	}

	output := opts.Output
	if output == "" {
		output = cfg.GetOutput()
	}
	archiveDB := opts.ArchiveDB
	if archiveDB == "" {
		archiveDB = cfg.GetArchiveDB()
	}

	return Unify(inputs, output, archiveDB, opts, cfg)
}

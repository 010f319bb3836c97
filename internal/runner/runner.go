package runner

import (
	"io"
	"os"

	"github.com/StefanOctavian/lambdaz"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
)

type Options struct {
	Input      string // program file to interpret
	Source     string // program text, read from Input or stdin
	Spec       string // token spec yaml overriding the built-in LambdaZ spec
	Output     string
	TokensOnly bool
	Verbose    bool
	Silent     bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Regex-driven lexer generator and interpreter for the LambdaZ expression language.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "file", "f", "", "lambdaz program to run (stdin is used when omitted)"),
		flagSet.StringVarP(&opts.Spec, "spec", "ts", "", `custom token spec file (default '$HOME/.config/lambdaz/tokens.yaml' when present)`),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.TokensOnly, "tokens", "tk", false, "print the token stream instead of evaluating"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write tokens or the evaluation result"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display lambdaz version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	switch {
	case opts.Input != "":
		if !fileutil.FileExists(opts.Input) {
			gologger.Fatal().Msgf("program file %v does not exist", opts.Input)
		}
		bin, err := os.ReadFile(opts.Input)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v got %v", opts.Input, err)
		}
		opts.Source = string(bin)
	case fileutil.HasStdin():
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Fatal().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Source = string(bin)
	default:
		gologger.Fatal().Msgf("lambdaz: no input found")
	}

	// fall back to the user's token spec when one was generated
	if opts.Spec == "" && fileutil.FileExists(lambdaz.DefaultSpecFilePath) {
		opts.Spec = lambdaz.DefaultSpecFilePath
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

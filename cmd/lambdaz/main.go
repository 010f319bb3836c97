package main

import (
	"fmt"
	"io"
	"os"

	"github.com/StefanOctavian/lambdaz"
	"github.com/StefanOctavian/lambdaz/internal/runner"
	"github.com/StefanOctavian/lambdaz/lang"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	spec := lambdaz.DefaultTokens
	if opts.Spec != "" {
		tokens, err := runner.LoadSpec(opts.Spec)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", opts.Spec, err)
		}
		gologger.Verbose().Msgf("Using token spec from %v (%d tokens)", opts.Spec, len(tokens))
		spec = tokens
	}

	lexer, err := lambdaz.NewLexer(spec)
	if err != nil {
		gologger.Fatal().Msgf("failed to compile token spec got: %v", err)
	}

	output := getOutputWriter(opts.Output)
	defer closeOutput(output, opts.Output)

	tokens, err := lexer.Lex(opts.Source)
	if err != nil {
		// a lexical error is program output, printed verbatim
		fmt.Fprintln(output, err.Error())
		return
	}

	if opts.TokensOnly {
		for _, tok := range tokens {
			fmt.Fprintf(output, "%s %q\n", tok.Name, tok.Value)
		}
		return
	}

	prog, err := lang.Parse(tokens)
	if err != nil {
		gologger.Fatal().Msgf("failed to parse program got: %v", err)
	}
	result, err := prog.Eval(map[string]lang.Atom{})
	if err != nil {
		gologger.Fatal().Msgf("failed to evaluate program got: %v", err)
	}
	fmt.Fprintln(output, result)
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}

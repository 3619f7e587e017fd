package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/recode"
)

type cmdopts struct {
	Encoding string `short:"e" long:"encoding" default:"utf-8"`
	Output   string `short:"o" long:"output"`
	Verbose  bool   `short:"v" long:"verbose"`
	Version  bool   `long:"version"`
}

// Each error kind maps to its own exit code so callers can tell the
// failure modes apart without parsing stderr.
const (
	exitOK = iota
	exitNotFound
	exitUnsupportedEncoding
	exitDecodeFailed
	exitEncodeFailed
	exitUnexpected
)

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("recode: using recode version %s\n", recode.Version)
}

func showUsage() {
	fmt.Printf(`Usage : recode [options] file
	Re-encode the file into the target character encoding
	-e, --encoding : target encoding (default: %s)
	-o, --output   : output file path (default: derived from the input path)
	-v, --verbose  : verbose output
	--version : display the version of the recode library used
`, recode.DefaultEncoding)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return exitUnexpected
	}

	if opts.Version {
		showVersion()
		return exitOK
	}

	if len(args) != 1 {
		showUsage()
		return exitUnexpected
	}
	inputPath := args[0]

	if opts.Verbose {
		fmt.Printf("Input file: %s\n", inputPath)
		fmt.Printf("Target encoding: %s\n", opts.Encoding)
		if opts.Output != "" {
			fmt.Printf("Output file: %s\n", opts.Output)
		}
	}

	options := []recode.Option{recode.WithEncoding(opts.Encoding)}
	if opts.Output != "" {
		options = append(options, recode.WithOutput(opts.Output))
	}

	resultPath, err := recode.Transcode(inputPath, options...)
	if err != nil {
		switch err.(type) {
		case recode.ErrNotFound:
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return exitNotFound
		case recode.ErrUnsupportedEncoding:
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return exitUnsupportedEncoding
		case recode.ErrDecode:
			fmt.Fprintf(os.Stderr, "Error: could not decode input file - %s\n", err)
			return exitDecodeFailed
		case recode.ErrEncode:
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return exitEncodeFailed
		default:
			fmt.Fprintf(os.Stderr, "Unexpected error: %s\n", err)
			return exitUnexpected
		}
	}

	if opts.Verbose {
		// display only; the transcode outcome above is already final
		if detected, err := recode.DetectEncoding(inputPath); err == nil {
			fmt.Printf("Original encoding detected: %s\n", detected)
		}
	}

	fmt.Printf("File encoded successfully: %s\n", resultPath)
	return exitOK
}

// SPDX-License-Identifier: EPL-2.0

// Command wav2ast converts a 16-bit PCM WAV file into the Nintendo AST
// streaming format, preserving the audio losslessly and attaching loop
// metadata.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wav2ast"
	"github.com/ik5/wav2ast/formats/ast"
	"github.com/ik5/wav2ast/formats/wav"
)

const help = `
Usage: wav2ast <input file> [optional arguments]

OPTIONAL ARGUMENTS
	-o [output file]                           (default: same as input with .ast extension)
	-s [loop start sample]                     (default: 0)
	-t [loop start in microseconds]            (ex: 30000000 is 30 seconds, or 960000 samples at 32000 Hz)
	-n                                         (disables looping)
	-e [loop end sample / total samples]       (default: number of samples in source file)
	-f [loop end in microseconds / total time]
	-r [sample rate]                           (default: same as source file; changes playback speed rather than size)
	-h                                         (shows this help text)

USAGE EXAMPLES
	wav2ast inputfile.wav -o outputfile.ast -s 158462 -e 7485124
	wav2ast "use quotations if the filename contains spaces.wav" -n -f 95000000

Note: this program only works with WAV files (.wav/.wave) encoded as 16-bit
PCM. Convert any other source format to WAV first.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Print(help)
		return 1
	}

	input := args[0]
	if input == "-h" && len(args) == 1 {
		fmt.Print(help)
		return 1
	}
	if strings.Contains(input, "*") {
		fmt.Printf("ERROR: only a single input file can be opened at a time; enter an exact file name.\n%s", help)
		return 1
	}

	fs := flag.NewFlagSet("wav2ast", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		outName     = fs.String("o", "", "output file")
		loopStart   = fs.Uint("s", 0, "loop start sample")
		loopStartUS = fs.Uint64("t", 0, "loop start in microseconds")
		noLoop      = fs.Bool("n", false, "disable looping")
		endSample   = fs.Uint("e", 0, "loop end sample / total samples")
		endUS       = fs.Uint64("f", 0, "loop end in microseconds / total time")
		rate        = fs.Uint("r", 0, "custom playback sample rate")
		showHelp    = fs.Bool("h", false, "show help text")
	)
	if err := fs.Parse(args[1:]); err != nil {
		fmt.Print(help)
		return 1
	}
	if fs.NArg() > 0 {
		// Stray positional arguments mean a malformed command line.
		fmt.Print(help)
		return 1
	}
	if *showHelp {
		fmt.Print(help)
	}

	supplied := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { supplied[f.Name] = true })

	opts := wav2ast.Options{
		LoopStart:  uint32(*loopStart),
		NoLoop:     *noLoop,
		SampleRate: uint32(*rate),
	}
	if supplied["t"] {
		opts.LoopStartMicros = loopStartUS
	}
	if supplied["e"] {
		v := uint32(*endSample)
		opts.EndSample = &v
	}
	if supplied["f"] {
		opts.EndMicros = endUS
	}

	output, err := defaultOutputName(input)
	if err != nil {
		fmt.Printf("ERROR: %v\n%s", err, help)
		return 1
	}
	if supplied["o"] {
		if isValidOutputName(*outName) {
			output = *outName
		} else {
			fmt.Printf("WARNING: output filename %q contains illegal characters, the output argument will be ignored.\n", *outName)
		}
	}
	output, err = ensureASTExtension(output)
	if err != nil {
		fmt.Printf("ERROR: %v\n%s", err, help)
		return 1
	}

	in, err := os.Open(input)
	if err != nil {
		fmt.Printf("ERROR: cannot find/open input file!\n%s", help)
		return 1
	}
	defer in.Close()

	src, err := wav.Decode(in)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return 1
	}
	for _, warning := range src.Warnings {
		fmt.Printf("WARNING: %s\n", warning)
	}

	plan, err := wav2ast.ResolvePlan(src.Descriptor, opts)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return 1
	}
	layout, err := ast.ComputeLayout(plan.TotalSamples, src.Channels)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return 1
	}

	if dir := filepath.Dir(output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Printf("ERROR: cannot create output directory: %v\n", err)
			return 1
		}
	}
	out, err := os.Create(output)
	if err != nil {
		fmt.Printf("ERROR: couldn't create output file: %v\n", err)
		return 1
	}
	defer out.Close()

	printSummary(plan, layout, src.Channels)
	fmt.Printf("\nWriting %s...", output)

	stream := ast.Stream{
		Channels:     src.Channels,
		SampleRate:   plan.SampleRate,
		TotalSamples: plan.TotalSamples,
		LoopStart:    plan.LoopStart,
		Looped:       plan.Looped,
	}
	if err := ast.Encode(out, src, stream); err != nil {
		fmt.Printf("\nERROR: %v\n", err)
		return 1
	}

	fmt.Print("...DONE!\n")
	return 0
}

func printSummary(plan wav2ast.Plan, layout ast.BlockLayout, channels int) {
	fmt.Printf("File opened successfully!\n\n")
	fmt.Printf("\tAST file size: %d bytes\n", ast.HeaderSize+layout.StreamSize())
	fmt.Printf("\tSample rate: %d Hz\n", plan.SampleRate)
	fmt.Printf("\tIs looped: %t\n", plan.Looped)
	if plan.Looped {
		fmt.Printf("\tStarting loop point: %d samples\n", plan.LoopStart)
	}
	fmt.Printf("\tEnd of stream: %d samples\n", plan.TotalSamples)
	fmt.Printf("\tNumber of channels: %d%s\n", channels, channelTag(channels))
}

func channelTag(channels int) string {
	switch channels {
	case 1:
		return " (mono)"
	case 2:
		return " (stereo)"
	default:
		return ""
	}
}

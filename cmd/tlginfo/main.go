// Command tlginfo encodes, decodes, and inspects TLG images from the
// command line.
//
// Usage:
//
//	tlginfo enc [options] <input>        PNG/JPEG → TLG5 (use "-" for stdin)
//	tlginfo dec [options] <input.tlg>    TLG5/TLG6 → PNG/JPEG (use "-" for stdin, -o - for stdout)
//	tlginfo info <input.tlg>             Display TLG header metadata
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tlgimage/tlg"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "enc":
		err = runEnc(os.Args[2:])
	case "dec":
		err = runDec(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "tlginfo: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "tlginfo: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  tlginfo enc [options] <input>       Encode PNG/JPEG to TLG5
  tlginfo dec [options] <input.tlg>   Decode TLG5/TLG6 to PNG or JPEG
  tlginfo info <input.tlg>            Display TLG header metadata

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "tlginfo <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned wrapped so that Close is a no-op.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// --- enc ---

func runEnc(args []string) error {
	fs := flag.NewFlagSet("enc", flag.ContinueOnError)
	output := fs.String("o", "", `output path (default: <input>.tlg, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("enc: missing input file\nUsage: tlginfo enc [options] <input>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("enc: decoding input: %w", err)
	}

	outputPath := *output
	if outputPath == "-" {
		return tlg.Encode(os.Stdout, img)
	}

	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "output.tlg"
		} else {
			base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
			outputPath = base + ".tlg"
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := tlg.Encode(out, img); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("enc: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}

	fi, _ := os.Stat(outputPath)
	fmt.Fprintf(os.Stderr, "Encoded %s → %s (%d bytes)\n", inputPath, outputPath, fi.Size())
	return nil
}

// --- dec ---

func runDec(args []string) error {
	fs := flag.NewFlagSet("dec", flag.ContinueOnError)
	output := fs.String("o", "", `output path (default: .png, "-" for stdout)`)
	fmtFlag := fs.String("fmt", "", "output format: png, jpeg (auto-detect from extension if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("dec: missing input file\nUsage: tlginfo dec [options] <input.tlg>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("dec: reading input: %w", err)
	}

	img, err := tlg.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("dec: %w", err)
	}

	outFmt := detectOutputFormat(*fmtFlag, *output)
	outputPath := *output

	if outputPath == "-" {
		return encodeImage(os.Stdout, img, outFmt)
	}

	if outputPath == "" {
		ext := ".png"
		if outFmt == "jpeg" {
			ext = ".jpg"
		}
		if inputPath == "-" {
			outputPath = "output" + ext
		} else {
			base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
			outputPath = base + ext
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := encodeImage(out, img, outFmt); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("dec: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}

	fmt.Fprintf(os.Stderr, "Decoded %s → %s\n", inputPath, outputPath)
	return nil
}

// detectOutputFormat returns "png" or "jpeg" based on flag/extension.
func detectOutputFormat(fmtFlag, outputPath string) string {
	if fmtFlag != "" {
		return strings.ToLower(fmtFlag)
	}
	if outputPath != "" && outputPath != "-" {
		switch strings.ToLower(filepath.Ext(outputPath)) {
		case ".jpg", ".jpeg":
			return "jpeg"
		}
	}
	return "png"
}

// encodeImage writes img in the specified format to w.
func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(w, img)
	}
}

// --- info ---

func runInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("info: missing input file\nUsage: tlginfo info <input.tlg>")
	}
	inputPath := args[0]

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("info: reading input: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	name := inputPath
	if inputPath == "-" {
		name = "<stdin>"
	}

	fmt.Printf("File:       %s\n", name)
	fmt.Printf("Format:     %s\n", format)
	fmt.Printf("Dimensions: %d x %d\n", cfg.Width, cfg.Height)

	if inputPath != "-" {
		fi, err := os.Stat(inputPath)
		if err == nil {
			fmt.Printf("File size:  %d bytes\n", fi.Size())
		}
	}

	return nil
}

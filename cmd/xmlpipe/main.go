// Command xmlpipe re-serializes an XML document as a stream of events.
//
// The input is lexed by speedyxml.Reader and replayed through a
// speedyxml.Writer, so the default output is byte-identical to the input.
// Flags can drop comments, convert the output to another encoding, or
// compress it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	speedyxml "github.com/afishhh/speedy-xml"
)

// CLI defines the xmlpipe command-line interface.
type CLI struct {
	Input         string `arg:"" optional:"" help:"Input XML file (defaults to stdin)"`
	Output        string `short:"o" help:"Output file (defaults to stdout)"`
	StripComments bool   `help:"Drop comments from the output"`
	Encoding      string `short:"e" help:"Output encoding: utf-16be, utf-16le, iso-8859-1, windows-1252"`
	Zstd          bool   `help:"Compress output with zstd"`
	Gzip          bool   `help:"Compress output with gzip"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("xmlpipe"),
		kong.Description("Stream an XML document through the speedyxml writer."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	if cli.Zstd && cli.Gzip {
		return errors.New("--zstd and --gzip are mutually exclusive")
	}

	src, err := readInput(cli.Input)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	// The compressor sits between the writer and the file so the encoded
	// (and possibly re-encoded) XML bytes are what gets compressed.
	var finishCompressor func() error
	switch {
	case cli.Zstd:
		zw, err := zstd.NewWriter(out)
		if err != nil {
			return fmt.Errorf("open zstd writer: %w", err)
		}
		out = zw
		finishCompressor = zw.Close
	case cli.Gzip:
		gw := gzip.NewWriter(out)
		out = gw
		finishCompressor = gw.Close
	}

	w, err := openWriter(out, cli)
	if err != nil {
		return err
	}

	r := speedyxml.NewReader(string(src))
	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if cli.StripComments && ev.Kind() == speedyxml.CommentKind {
			continue
		}
		if err := w.WriteEvent(ev); err != nil {
			return fmt.Errorf("at input position %d: %w", r.Pos(), err)
		}
	}
	if err := w.Finish(); err != nil {
		return err
	}

	if finishCompressor != nil {
		if err := finishCompressor(); err != nil {
			return fmt.Errorf("finish compressor: %w", err)
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return src, nil
}

func openWriter(out io.Writer, cli *CLI) (*speedyxml.Writer, error) {
	if cli.Encoding == "" {
		return speedyxml.Open(out), nil
	}
	enc, err := encoderFor(cli.Encoding)
	if err != nil {
		return nil, err
	}
	return speedyxml.OpenEncoding(out, enc), nil
}

func encoderFor(name string) (*encoding.Encoder, error) {
	switch name {
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewEncoder(), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewEncoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewEncoder(), nil
	case "windows-1252":
		return charmap.Windows1252.NewEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

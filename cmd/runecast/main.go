// Command runecast is the CLI tool for RuneCast.
// It converts Unicode scalar values to UTF-8 byte sequences and
// narrowed single bytes, one-off or in bulk from code-point lists.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/RuneCast/core/digest"
	"github.com/FocuswithJustin/RuneCast/core/errors"
	"github.com/FocuswithJustin/RuneCast/core/scalar"
	"github.com/FocuswithJustin/RuneCast/internal/codelist"
	"github.com/FocuswithJustin/RuneCast/internal/logging"
	"github.com/FocuswithJustin/RuneCast/internal/report"
)

const version = "0.1.0"

// CLI defines the command-line interface for runecast.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Encode  EncodeCmd  `cmd:"" help:"Encode code points to UTF-8 byte sequences"`
	Narrow  NarrowCmd  `cmd:"" help:"Truncate code points to their low byte"`
	Inspect InspectCmd `cmd:"" help:"Show encoding, narrowing and divergence for one code point"`
	Decode  DecodeCmd  `cmd:"" help:"Decode a hex UTF-8 byte sequence back to code points"`
	Batch   BatchCmd   `cmd:"" help:"Process a code-point list file and emit a JSON report"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// parsePointArg parses a code-point argument in U+XXXX, 0x-hex or
// decimal form and validates it as a scalar value.
func parsePointArg(arg string) (scalar.Scalar, error) {
	v, err := codelist.ParsePoint(arg)
	if err != nil {
		return scalar.Scalar{}, fmt.Errorf("not a code point: %s", arg)
	}
	return scalar.New(v)
}

// EncodeCmd prints the canonical UTF-8 encoding of each code point.
type EncodeCmd struct {
	Points []string `arg:"" name:"codepoint" help:"Code points (U+XXXX, 0x-hex or decimal)"`
}

func (c *EncodeCmd) Run() error {
	for _, arg := range c.Points {
		s, err := parsePointArg(arg)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", s, hex.EncodeToString(s.EncodeUTF8()))
	}
	return nil
}

// NarrowCmd prints the truncated low byte of each code point.
type NarrowCmd struct {
	Points []string `arg:"" name:"codepoint" help:"Code points (U+XXXX, 0x-hex or decimal)"`
}

func (c *NarrowCmd) Run() error {
	for _, arg := range c.Points {
		s, err := parsePointArg(arg)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%02x\n", s, s.Narrow())
	}
	return nil
}

// InspectCmd shows everything about a single code point.
type InspectCmd struct {
	Point string `arg:"" name:"codepoint" help:"Code point (U+XXXX, 0x-hex or decimal)"`
}

func (c *InspectCmd) Run() error {
	s, err := parsePointArg(c.Point)
	if err != nil {
		return err
	}
	return inspect(os.Stdout, s)
}

func inspect(w io.Writer, s scalar.Scalar) error {
	enc := s.EncodeUTF8()

	fmt.Fprintf(w, "scalar:    %s\n", s)
	if unicode.IsPrint(s.Rune()) {
		fmt.Fprintf(w, "character: %c\n", s.Rune())
	}
	fmt.Fprintf(w, "utf8:      %s (%d byte", hex.EncodeToString(enc), len(enc))
	if len(enc) != 1 {
		fmt.Fprint(w, "s")
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintf(w, "narrowed:  %02x\n", s.Narrow())
	if s.NarrowMatchesUTF8() {
		fmt.Fprintln(w, "narrowing: matches the UTF-8 encoding")
	} else {
		fmt.Fprintln(w, "narrowing: lossy, differs from the UTF-8 encoding")
	}

	back, n, err := scalar.DecodeUTF8(enc)
	if err != nil || n != len(enc) || back != s {
		return fmt.Errorf("round trip failed for %s", s)
	}
	fmt.Fprintln(w, "roundtrip: ok")
	return nil
}

// DecodeCmd decodes a hex-encoded UTF-8 byte sequence.
type DecodeCmd struct {
	Hex string `arg:"" name:"hexbytes" help:"UTF-8 bytes in hex, e.g. c380 or 'c3 80'"`
}

func (c *DecodeCmd) Run() error {
	cleaned := strings.NewReplacer(" ", "", "\t", "").Replace(c.Hex)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty input")
	}

	for len(data) > 0 {
		s, n, err := scalar.DecodeUTF8(data)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", s, hex.EncodeToString(data[:n]))
		data = data[n:]
	}
	return nil
}

// BatchCmd runs encode+narrow over a code-point list file.
type BatchCmd struct {
	Path   string `arg:"" name:"file" type:"path" help:"Code-point list (plain, .gz or .xz)"`
	Output string `name:"output" short:"o" type:"path" help:"Write the JSON report to a file instead of stdout"`
}

func (c *BatchCmd) Run() error {
	rep, err := runBatch(context.Background(), c.Path)
	if err != nil {
		return err
	}

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		out = f
	}
	return rep.WriteJSON(out)
}

// runBatch processes every line of the list, hashing the concatenated
// encoded output as it goes. Invalid lines are recorded in the report
// and logged, not fatal; only I/O failures abort the run.
func runBatch(ctx context.Context, path string) (*report.Report, error) {
	r, err := codelist.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rep := report.New(path)
	ctx = logging.WithRunID(ctx, rep.RunID)
	hasher := digest.New()
	start := time.Now()

	for {
		entry, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *errors.ParseError
			if !errors.As(err, &perr) {
				return nil, err // I/O failure, not a bad line
			}
			logging.BatchLine(ctx, path, perr.Line, err)
			rep.Add(report.Result{Line: perr.Line, Error: err.Error()})
			continue
		}

		res := report.Result{Line: entry.Line, Input: entry.Text}
		s, err := scalar.New(entry.Value)
		if err != nil {
			logging.BatchLine(ctx, path, entry.Line, err)
			res.Error = err.Error()
			rep.Add(res)
			continue
		}

		enc := s.EncodeUTF8()
		if _, err := hasher.Write(enc); err != nil {
			return nil, err
		}
		res.Scalar = s.String()
		res.UTF8 = hex.EncodeToString(enc)
		res.Narrowed = fmt.Sprintf("%02x", s.Narrow())
		res.Diverges = !s.NarrowMatchesUTF8()
		rep.Add(res)
	}

	rep.Finish(hasher.Sum(), hasher.Bytes())
	logging.BatchDone(ctx, path, rep.Processed, rep.Failed, time.Since(start))
	return rep, nil
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("runecast version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("runecast"),
		kong.Description("RuneCast - Unicode scalar value encoding and narrowing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(CLI.LogFormat)
	ctx.FatalIfErrorf(err)
	logging.InitLogger(level, format)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	int128 "github.com/shabbyrobe/go-int128"
)

// int128fmt parses 128-bit signed integers and prints them with the given
// formatting options. It is mostly useful for checking what a value looks
// like in another base, or for poking at the raw hi:lo representation.

const usage = `Int128 formatter

Usage: int128fmt [options] [--] [value...]

Values are read one per line from stdin if none are given. Each value is
parsed with -in (0 guesses from the prefix), or as a raw "hi:lo" pair of
uint64s if -raw is set. Put "--" before negative values so they are not
read as flags.

Options:
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type command struct {
	in     int
	opts   int128.FormatOptions
	fill   string
	align  string
	raw    bool
	dump   bool
	output io.Writer
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var cmd = command{output: stdout}

	fs := flag.NewFlagSet("int128fmt", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.IntVar(&cmd.in, "in", 0, "input base (0, 8, 10 or 16)")
	fs.IntVar(&cmd.opts.Base, "base", 10, "output base (8, 10 or 16)")
	fs.BoolVar(&cmd.opts.Uppercase, "upper", false, "uppercase hex digits and prefix")
	fs.BoolVar(&cmd.opts.ShowBase, "showbase", false, "prefix hex with 0x and octal with 0")
	fs.BoolVar(&cmd.opts.ShowPlus, "plus", false, "prefix non-negative decimal with '+'")
	fs.IntVar(&cmd.opts.Width, "width", 0, "minimum output width")
	fs.StringVar(&cmd.fill, "fill", " ", "fill character used to pad to -width")
	fs.StringVar(&cmd.align, "align", "right", "fill alignment (left, right, internal)")
	fs.BoolVar(&cmd.raw, "raw", false, "read values as hi:lo uint64 pairs")
	fs.BoolVar(&cmd.dump, "dump", false, "dump the parsed value instead of formatting it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmd.configure(); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		for _, arg := range fs.Args() {
			if err := cmd.handle(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scn := bufio.NewScanner(stdin)
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		if line == "" {
			continue
		}
		if err := cmd.handle(line); err != nil {
			return err
		}
	}
	if err := scn.Err(); err != nil {
		return oops.Trace(err)
	}
	return nil
}

func (cmd *command) configure() error {
	switch cmd.opts.Base {
	case 8, 10, 16:
	default:
		return oops.New("-base must be 8, 10 or 16, found %d", cmd.opts.Base)
	}

	switch cmd.align {
	case "left":
		cmd.opts.Align = int128.AlignLeft
	case "right":
		cmd.opts.Align = int128.AlignRight
	case "internal":
		cmd.opts.Align = int128.AlignInternal
	default:
		return oops.New("unknown -align %q", cmd.align)
	}

	if utf8.RuneCountInString(cmd.fill) != 1 {
		return oops.New("-fill must be a single character, found %q", cmd.fill)
	}
	cmd.opts.Fill, _ = utf8.DecodeRuneInString(cmd.fill)
	return nil
}

func (cmd *command) parse(s string) (int128.Int128, error) {
	if !cmd.raw {
		v, err := int128.ParseInt128(s, cmd.in)
		if err != nil {
			return v, oops.Trace(err)
		}
		return v, nil
	}

	hs, ls, ok := strings.Cut(s, ":")
	if !ok {
		return int128.Int128{}, oops.New("raw value %q is not in hi:lo form", s)
	}
	hi, err := strconv.ParseUint(hs, 0, 64)
	if err != nil {
		return int128.Int128{}, oops.Trace(err)
	}
	lo, err := strconv.ParseUint(ls, 0, 64)
	if err != nil {
		return int128.Int128{}, oops.Trace(err)
	}
	return int128.Int128FromRaw(hi, lo), nil
}

func (cmd *command) handle(s string) error {
	v, err := cmd.parse(s)
	if err != nil {
		return err
	}

	if cmd.dump {
		hi, lo := v.Raw()
		if _, err := fmt.Fprintf(cmd.output, "%shi:%#016x lo:%#016x\n", spew.Sdump(v), hi, lo); err != nil {
			return oops.Trace(err)
		}
		return nil
	}

	if _, err := int128.WriteInt128(cmd.output, v, cmd.opts); err != nil {
		return oops.Trace(err)
	}
	if _, err := io.WriteString(cmd.output, "\n"); err != nil {
		return oops.Trace(err)
	}
	return nil
}

package main

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	padded "github.com/wallaceicy06/go-padded"
	"github.com/wallaceicy06/go-padded/internal/logging"
)

// formatEnv supplies the default for --format.
const formatEnv = "PADFIELD_FORMAT"

type options struct {
	format    string
	width     int
	align     string
	pad       string
	excess    string
	tail      string
	ansi      bool
	verbosity int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "padfield [flags] [value...]",
		Short: "Pad values to a fixed display width",
		Long: `padfield pads each argument, or each line of standard input when no
arguments are given, to a fixed display width and prints one padded value
per line.

The field can be described by individual flags or by a single format string
of the form width[,alignment[,pad[,excess]]], e.g. "8,right,0,truncate".
--format defaults to $` + formatEnv + `. Each individual flag that is set
overrides the matching part of the format.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), opts.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", os.Getenv(formatEnv), "Field format width[,alignment[,pad[,excess]]]")
	flags.IntVarP(&opts.width, "width", "w", 0, "Total display width")
	flags.StringVarP(&opts.align, "align", "a", "left", "Alignment of the value: left or right")
	flags.StringVarP(&opts.pad, "pad", "p", " ", "Pad character")
	flags.StringVarP(&opts.excess, "excess", "e", string(padded.Forbid), "What to do with values wider than width: forbid, ignore, truncate or fit")
	flags.StringVar(&opts.tail, "tail", "", "Text marking truncated values (with --excess=truncate)")
	flags.BoolVar(&opts.ansi, "ansi", false, "Treat ANSI escape sequences as zero width")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logger := logging.GetLogger("padfield")

	f, err := resolveFormat(cmd, opts)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("width", f.Width).
		Str("direction", f.Direction.String()).
		Str("pad", string(f.Pad)).
		Str("excess", string(f.Excess)).
		Msg("Format resolved")

	w := bufio.NewWriter(cmd.OutOrStdout())
	err = renderAll(w, cmd.InOrStdin(), args, f, opts, logger)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}

// resolveFormat builds the field format. --format (or $PADFIELD_FORMAT)
// gives the base, and each individual flag that was set overrides its part.
func resolveFormat(cmd *cobra.Command, opts *options) (padded.Format, error) {
	flags := cmd.Flags()

	f := padded.Format{Pad: ' ', Excess: padded.Forbid}
	if opts.format != "" {
		var err error
		if f, err = padded.ParseFormat(opts.format); err != nil {
			return padded.Format{}, err
		}
	}

	if opts.format == "" || flags.Changed("width") {
		if opts.width < 0 {
			return padded.Format{}, errors.Errorf("invalid width %d", opts.width)
		}
		f.Width = opts.width
	}

	if opts.format == "" || flags.Changed("align") {
		switch opts.align {
		case "left", "default":
			f.Direction = padded.After
		case "right":
			f.Direction = padded.Before
		default:
			return padded.Format{}, errors.Errorf("invalid alignment %q", opts.align)
		}
	}

	if opts.format == "" || flags.Changed("pad") {
		r, size := utf8.DecodeRuneInString(opts.pad)
		if r == utf8.RuneError || size != len(opts.pad) {
			return padded.Format{}, errors.Errorf("pad must be a single character, have %q", opts.pad)
		}
		f.Pad = r
	}

	if opts.format == "" || flags.Changed("excess") {
		f.Excess = padded.ExcessPolicy(opts.excess)
		if !f.Excess.Valid() {
			return padded.Format{}, errors.Errorf("invalid excess policy %q", opts.excess)
		}
	}

	if opts.tail != "" && f.Excess != padded.Truncate {
		return padded.Format{}, errors.Errorf("--tail requires the truncate excess policy, have %q", f.Excess)
	}
	return f, nil
}

func renderAll(w io.Writer, in io.Reader, args []string, f padded.Format, opts *options, logger zerolog.Logger) error {
	render := func(n int, s string) error {
		item := f.Item(opts.value(s))
		if opts.tail != "" {
			item.HandleExcess = padded.TruncateWithTail(opts.value(opts.tail))
		}
		logger.Trace().Int("line", n).Int("valueWidth", item.Value.Width()).Msg("Rendering value")

		if err := item.Render(w); err != nil {
			return errors.Wrapf(err, "value %d", n)
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	if len(args) > 0 {
		for i, arg := range args {
			if err := render(i+1, arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		if err := render(n, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	logger.Info().Int("lines", n).Msg("Input padded")
	return nil
}

func (o *options) value(s string) padded.Value {
	if o.ansi {
		return padded.Styled(s)
	}
	return padded.String(s)
}

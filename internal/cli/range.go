package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitkit/vpfloat"
)

// RangeOptions holds flags for the range command.
type RangeOptions struct {
	Encoding string
	From     uint
	To       uint
}

// WidthRange is the value range of one bit width.
type WidthRange struct {
	Width uint    `json:"width"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// RangeResult is the output of the range command.
type RangeResult struct {
	Encoding string       `json:"encoding"`
	Widths   []WidthRange `json:"widths"`
}

func (r RangeResult) String() string {
	var sb strings.Builder
	for i, w := range r.Widths {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d %s %s", w.Width, formatFloat(w.Min), formatFloat(w.Max))
	}
	return sb.String()
}

// NewRangeCommand creates the range command.
func NewRangeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RangeOptions{}

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the smallest and largest value per bit width",
		Long: `Print the smallest and largest representable value of an encoding
for every bit width in [from, to], one width per line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Encoding, "encoding", "standard", "value encoding (standard|interleaved)")
	cmd.Flags().UintVar(&opts.From, "from", vpfloat.MinBitCount, "smallest bit width")
	cmd.Flags().UintVar(&opts.To, "to", 16, "largest bit width")

	return cmd
}

func runRange(rootOpts *RootOptions, opts *RangeOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	enc, err := vpfloat.ParseEncoding(opts.Encoding)
	if err != nil {
		return argumentError(formatter, err.Error())
	}
	if opts.From < vpfloat.MinBitCount || opts.To > vpfloat.MaxBitCount || opts.From > opts.To {
		return argumentError(formatter, fmt.Sprintf("width range [%d, %d] must lie within [%d, %d]",
			opts.From, opts.To, vpfloat.MinBitCount, vpfloat.MaxBitCount))
	}

	codec, err := vpfloat.ByEncoding(enc)
	if err != nil {
		return argumentError(formatter, err.Error())
	}

	formatter.VerboseLog("Computing %s range for widths %d..%d", enc, opts.From, opts.To)

	result := RangeResult{Encoding: enc.String()}
	for w := opts.From; w <= opts.To; w++ {
		lo, err := codec.MinValue(w)
		if err != nil {
			return argumentError(formatter, err.Error())
		}
		hi, err := codec.MaxValue(w)
		if err != nil {
			return argumentError(formatter, err.Error())
		}
		result.Widths = append(result.Widths, WidthRange{Width: w, Min: lo, Max: hi})
	}

	return formatter.Success(result)
}

func argumentError(f *OutputFormatter, message string) error {
	if err := f.Error(ErrCodeArgument, message); err != nil {
		return err
	}
	return NewExitError(ExitCommandError, message)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

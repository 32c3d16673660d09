package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitkit/bitarray"
	"github.com/hupe1980/bitkit/cursor"
	"github.com/hupe1980/bitkit/vpfloat"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	Encoding string
	Width    uint
	Length   uint64
}

// DecodeResult is the output of the decode command.
type DecodeResult struct {
	Encoding string    `json:"encoding"`
	Width    uint      `json:"width"`
	Values   []float64 `json:"values"`
}

func (r DecodeResult) String() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, "\n")
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <hexword>...",
		Short: "Decode consecutive values from 64-bit words",
		Long: `Decode consecutive fixed-width values from a bit sequence.

Each argument is one 64-bit word in hex; bit 0 of the first word is the
first bit of the sequence. Decoding stops when fewer than width bits remain.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Encoding, "encoding", "standard", "value encoding (standard|interleaved)")
	cmd.Flags().UintVar(&opts.Width, "width", 8, "bits per value")
	cmd.Flags().Uint64Var(&opts.Length, "length", 0, "number of valid bits (0 means all words)")

	return cmd
}

func runDecode(rootOpts *RootOptions, opts *DecodeOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	enc, err := vpfloat.ParseEncoding(opts.Encoding)
	if err != nil {
		return argumentError(formatter, err.Error())
	}

	words, err := parseWords(args)
	if err != nil {
		return argumentError(formatter, err.Error())
	}

	n := uint64(len(words)) * 64
	if opts.Length != 0 {
		n = opts.Length
	}
	arr, err := bitarray.FromWords(words, n)
	if err != nil {
		return argumentError(formatter, err.Error())
	}

	r, err := vpfloat.NewReader(cursor.New(arr), enc, opts.Width)
	if err != nil {
		return argumentError(formatter, err.Error())
	}

	formatter.VerboseLog("Decoding %d bits as %d-bit %s values in [%s, %s]",
		n, r.BitCount(), enc, formatFloat(r.Min()), formatFloat(r.Max()))

	result := DecodeResult{Encoding: enc.String(), Width: opts.Width, Values: []float64{}}
	for r.Remaining() >= uint64(r.BitCount()) {
		v, err := r.ReadFloat()
		if err != nil {
			msg := fmt.Sprintf("decode value %d: %v", len(result.Values), err)
			if ferr := formatter.Error(ErrCodeDecode, msg); ferr != nil {
				return ferr
			}
			return WrapExitError(ExitFailure, "decode", err)
		}
		result.Values = append(result.Values, v)
	}

	return formatter.Success(result)
}

func parseWords(args []string) ([]uint64, error) {
	words := make([]uint64, len(args))
	for i, a := range args {
		s := strings.ReplaceAll(strings.ToLower(a), "_", "")
		s = strings.TrimPrefix(s, "0x")
		w, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid hex word %q", a)
		}
		words[i] = w
	}
	return words, nil
}

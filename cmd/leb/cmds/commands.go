// Package cmds implements the command tree of the leb tool.
package cmds

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-leb/leb128/pkg/config"
	"github.com/go-leb/leb128/pkg/leb128"
	"github.com/go-leb/leb128/pkg/logflags"
	"github.com/go-leb/leb128/pkg/version"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// log is whether to log debug statements.
	log bool
	// logOutput is a comma separated list of components that should produce debug output.
	logOutput string
	// maxBytes caps the number of bytes the encoder may produce.
	maxBytes int
	// decimal prints encoded bytes as comma separated decimals instead of hex.
	decimal bool
	// compat collapses decode failures into the sentinel value 0.
	compat bool

	// rootCommand is the root of the command tree.
	rootCommand *cobra.Command

	// stdout is where command output goes, wrapped for color when
	// attached to a terminal.
	stdout io.Writer = os.Stdout
	// colorEnabled is whether continuation-flagged bytes are highlighted.
	colorEnabled bool

	conf *config.Config
)

const lebCommandLongDesc = `leb encodes and decodes unsigned integers in the LEB128 wire format.

LEB128 (Little Endian Base 128) packs an integer into a variable number of
bytes. Every byte carries seven bits of the value, least significant group
first; the high bit of each byte is set when more bytes follow.`

// New returns an initialized command tree.
func New() *cobra.Command {
	// Config setup and load.
	conf = config.LoadConfig()

	colorEnabled = !conf.DisableColor && isatty.IsTerminal(os.Stdout.Fd())
	if colorEnabled {
		stdout = colorable.NewColorableStdout()
	}

	// Main leb root command.
	rootCommand = &cobra.Command{
		Use:   "leb",
		Short: "leb encodes and decodes unsigned integers in the LEB128 wire format.",
		Long:  lebCommandLongDesc,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logflags.Setup(log, logOutput)
		},
	}
	rootCommand.PersistentFlags().BoolVarP(&log, "log", "", false, "Enable debug logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should produce debug output (codec,cli).")

	// 'encode' subcommand.
	encodeCommand := &cobra.Command{
		Use:   "encode <value>...",
		Short: "Encode unsigned integers into LEB128 byte sequences.",
		Long: `Encode unsigned integers into LEB128 byte sequences.

Values are parsed in decimal, hexadecimal (0x prefix) or octal (0o prefix)
notation. Each value is printed on its own line, as space separated hex
bytes or, with --decimal, as comma separated decimals.

With --max-bytes N the encoder stops after N bytes: the output is then a
prefix of the full encoding and will not decode back to the input value.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			applyConfigDefaults(cmd.Flags())
			if err := encode(stdout, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	encodeCommand.Flags().IntVar(&maxBytes, "max-bytes", 0, "Cap the encoder output at this many bytes; longer encodings are silently truncated. 0 means no cap.")
	encodeCommand.Flags().BoolVar(&decimal, "decimal", false, "Print encoded bytes as comma separated decimals instead of hex.")
	rootCommand.AddCommand(encodeCommand)

	// 'decode' subcommand.
	decodeCommand := &cobra.Command{
		Use:   "decode <bytes>...",
		Short: "Decode LEB128 byte sequences into unsigned integers.",
		Long: `Decode LEB128 byte sequences into unsigned integers.

Byte sequences are given either as a hex string ("ac02", optionally with a
0x prefix) or as comma separated decimals ("172,2"). Truncated or overlong
input is reported as an error unless --compat is set, in which case it
decodes to the sentinel value 0, indistinguishable from a real zero.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := decode(stdout, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	decodeCommand.Flags().BoolVar(&compat, "compat", false, "Collapse decode failures into the sentinel value 0 instead of reporting an error.")
	rootCommand.AddCommand(decodeCommand)

	// 'version' subcommand.
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("leb\n%s\n%s\n", version.LebVersion, version.BuildInfo())
		},
	}
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

// applyConfigDefaults overrides flag defaults with values from the
// configuration file. Flags set on the command line win.
func applyConfigDefaults(fs *pflag.FlagSet) {
	if f := fs.Lookup("max-bytes"); f != nil && !f.Changed && conf.MaxBytes != 0 {
		f.Value.Set(strconv.Itoa(conf.MaxBytes))
	}
	if f := fs.Lookup("decimal"); f != nil && !f.Changed && conf.Output == "decimal" {
		f.Value.Set("true")
	}
}

func encode(out io.Writer, args []string) error {
	logger := logflags.CodecLogger()
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %v", arg, err)
		}

		capacity := maxBytes
		if capacity <= 0 || capacity > leb128.MaxLen64 {
			capacity = leb128.MaxLen64
		}
		buf := make([]byte, capacity)
		n, complete := leb128.PutUint64(buf, v)
		logger.Debugf("encoded %d into % x", v, buf[:n])
		if !complete {
			logflags.CLILogger().Warnf("encoding of %d truncated after %d of %d bytes", v, n, leb128.Len(v))
		}

		fmt.Fprintln(out, formatBytes(buf[:n]))
	}
	return nil
}

func decode(out io.Writer, args []string) error {
	logger := logflags.CodecLogger()
	for _, arg := range args {
		buf, err := parseBytes(arg)
		if err != nil {
			return fmt.Errorf("invalid byte sequence %q: %v", arg, err)
		}

		if compat {
			fmt.Fprintln(out, leb128.Decode(buf, len(buf)))
			continue
		}

		v, n, err := leb128.Uint64(buf)
		if err != nil {
			return fmt.Errorf("decode %q: %v", arg, err)
		}
		if n != len(buf) {
			logger.Debugf("%d trailing bytes after the terminating byte", len(buf)-n)
		}

		fmt.Fprintln(out, v)
	}
	return nil
}

// parseBytes parses a byte sequence given either as comma separated
// decimals ("172,2") or as a hex string ("ac02").
func parseBytes(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty byte sequence")
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		buf := make([]byte, 0, len(parts))
		for _, p := range parts {
			b, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return nil, err
			}
			buf = append(buf, byte(b))
		}
		return buf, nil
	}
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

const (
	contColor  = "\x1b[34m"
	resetColor = "\x1b[0m"
)

// formatBytes renders an encoded byte sequence, highlighting
// continuation-flagged bytes when color is enabled.
func formatBytes(buf []byte) string {
	parts := make([]string, len(buf))
	for i, b := range buf {
		var s string
		if decimal {
			s = strconv.Itoa(int(b))
		} else {
			s = fmt.Sprintf("%02x", b)
		}
		if colorEnabled && b&continuationBit != 0 {
			s = contColor + s + resetColor
		}
		parts[i] = s
	}
	sep := " "
	if decimal {
		sep = ","
	}
	return strings.Join(parts, sep)
}

const continuationBit = 1 << 7

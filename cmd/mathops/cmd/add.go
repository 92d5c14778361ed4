package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/mathops/internal/calculator"
	"github.com/pengelbrecht/mathops/internal/config"
	"github.com/pengelbrecht/mathops/internal/styles"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two integers",
	Long: `Add two signed integers and print their sum.

Results that do not fit in a native int wrap around.

Examples:
  # Add two numbers
  mathops add 100 200

  # Negative operands
  mathops add -1 -2

  # Output as JSON
  mathops add --json 1 -2`,
	// Operands like -1 would be read as shorthand flags, so add parses
	// its own arguments. See addOperands.
	DisableFlagParsing: true,
	Args:               validateAddArgs,
	RunE:               runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// paletteOptions are applied to every palette add renders with.
var paletteOptions []styles.Option

type addResult struct {
	A   int `json:"a"`
	B   int `json:"b"`
	Sum int `json:"sum"`
}

func validateAddArgs(cmd *cobra.Command, args []string) error {
	ops, help, err := addOperands(args)
	if err != nil || help {
		return err
	}
	if len(ops) != 2 {
		return usageError{fmt.Errorf("accepts 2 arg(s), received %d", len(ops))}
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ops, help, err := addOperands(args)
	if err != nil {
		return err
	}
	if help {
		return cmd.Help()
	}

	a, err := parseOperand(ops[0])
	if err != nil {
		return err
	}
	b, err := parseOperand(ops[1])
	if err != nil {
		return err
	}

	res := addResult{A: a, B: b, Sum: calculator.Add(a, b)}
	logger.Debug("add", "a", res.A, "b", res.B, "sum", res.Sum)

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputJSON {
		if err := json.NewEncoder(out).Encode(res); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	p := styles.New(out, cfg.ColorEnabled(), paletteOptions...)
	fmt.Fprintf(out, "%d %s %d %s %s\n", res.A, p.RenderDim("+"), res.B, p.RenderDim("="), p.RenderSum(strconv.Itoa(res.Sum)))
	return nil
}

func parseOperand(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, usageError{fmt.Errorf("invalid operand %q: %w", s, err)}
	}
	return int(n), nil
}

// addOperands splits raw add arguments into operands and the global flags
// add still honours. Any token that parses as an integer is an operand.
func addOperands(args []string) (ops []string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if _, perr := strconv.ParseInt(tok, 10, strconv.IntSize); perr == nil {
			ops = append(ops, tok)
			continue
		}
		switch {
		case tok == "--":
			ops = append(ops, args[i+1:]...)
			return ops, help, nil
		case tok == "-h" || tok == "--help":
			help = true
		case tok == "--json":
			jsonOutput = true
		case tok == "-v" || tok == "--verbose":
			verbose = true
		case tok == "--config":
			if i+1 >= len(args) {
				return nil, false, usageError{fmt.Errorf("flag needs an argument: --config")}
			}
			i++
			configPath = args[i]
		case strings.HasPrefix(tok, "--config="):
			configPath = strings.TrimPrefix(tok, "--config=")
		case len(tok) > 1 && tok[0] == '-' && isDigit(tok[1]):
			ops = append(ops, tok)
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			return nil, false, usageError{fmt.Errorf("unknown flag: %s", tok)}
		default:
			ops = append(ops, tok)
		}
	}
	return ops, help, nil
}

// isDigit reports whether b is a decimal digit. Tokens like -1.5 or
// -99999999999999999999 start with one and are treated as operands so
// parseOperand reports them.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmcpheron/ancient-number-converter/internal/ux"
	"github.com/jmcpheron/ancient-number-converter/pkg/api"
	"github.com/jmcpheron/ancient-number-converter/pkg/lint"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

func (a *app) encodeCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "encode <system> <number>...",
		Short: "Write decimal numbers in a numeral system",
		Long: `Encode one or more decimal integers and show the step-by-step breakdown.

Examples:
  numerals encode roman 1999
  numerals encode mayan 0 20 400
  numerals encode egyptian 1234 --quiet`,
		Args: minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, arg := range args[1:] {
				n, err := parseNumber(arg)
				if err != nil {
					return err
				}
				resp := api.Handle(api.Request{Op: api.OpEncode, System: args[0], Number: &n})
				if err := a.emit(resp); err != nil {
					return err
				}
				failed = failed || resp.Failed()
				if !a.json() && resp.Error == "" {
					a.printEncoded(resp, quiet)
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the notation")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <system> <notation>...",
		Short: "Read a written numeral back into a decimal number",
		Long: `Decode a notation written on one line. Remaining arguments are joined
with spaces, so unquoted Mayan or Quipu symbols work too. Babylonian places
are separated by " | ".

Examples:
  numerals decode roman MCMXCIX
  numerals decode mayan • ⠀ ⠀
  numerals decode babylonian "𒁹 | | 𒁹"`,
		Args: minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := api.Handle(api.Request{Op: api.OpDecode, System: args[0], Input: lineInput(args[1:])})
			if err := a.emit(resp); err != nil {
				return err
			}
			if !a.json() && resp.Decoded != nil {
				if n, err := resp.Decoded.Int(); err != nil {
					a.out.Error(err.Error())
				} else {
					a.out.Success(strconv.Itoa(n))
				}
			}
			if resp.Failed() {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <system> <number>...",
		Short: "Check that encoding then decoding returns the same number",
		Long: `Run the round-trip check for one or more numbers. The command fails when
any of them does not come back unchanged.

Examples:
  numerals verify quipu 305
  numerals verify roman 1 3999 4000`,
		Args: minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, arg := range args[1:] {
				n, err := parseNumber(arg)
				if err != nil {
					return err
				}
				resp := api.Handle(api.Request{Op: api.OpVerify, System: args[0], Number: &n})
				if err := a.emit(resp); err != nil {
					return err
				}
				failed = failed || resp.Failed()
				if a.json() || resp.Verification == nil {
					continue
				}
				if v := resp.Verification; v.Passed {
					a.out.Success(fmt.Sprintf("%d round-trips", v.Original))
				} else {
					a.out.Error(fmt.Sprintf("%d: %s", v.Original, v.Error))
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <system> <notation>...",
		Short: "Report malformed or non-canonical writing",
		Long: `Check a written numeral. Input the decoder rejects is an error; input it
accepts but that differs from the canonical form is a warning.

Examples:
  numerals lint roman IIII
  numerals lint egyptian 𓏺𓎆`,
		Args: minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := api.Handle(api.Request{Op: api.OpLint, System: args[0], Input: lineInput(args[1:])})
			if err := a.emit(resp); err != nil {
				return err
			}
			if !a.json() && resp.Lint != nil {
				a.printLint(resp.Lint)
			}
			if resp.Failed() {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <number>",
		Short: "Write one number in every system side by side",
		Long: `Encode and verify one decimal integer in all seven systems. Systems whose
range excludes the number show the range error. The command fails only when
no system can write the number.

Examples:
  numerals compare 1999
  numerals compare 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			resp := api.Handle(api.Request{Op: api.OpCompare, Number: &n})
			if err := a.emit(resp); err != nil {
				return err
			}
			if !a.json() {
				a.printComparison(n, resp.Comparison)
			}
			if resp.Failed() {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) printComparison(n int, cs []api.Comparison) {
	a.out.Title(fmt.Sprintf("%d in every system", n))
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		notation, mark := c.Display, a.out.Render(ux.IconSuccess)
		switch {
		case !c.Encoded.OK():
			notation, mark = a.out.Styles.Muted.Render(c.Encoded.Err.Message), a.out.Render(ux.IconError)
		case !c.Verification.Passed:
			mark = a.out.Render(ux.IconError)
		}
		rows = append(rows, []string{c.Name, notation, mark})
	}
	a.out.Table([]string{"SYSTEM", "NOTATION", ""}, rows)
}

// emit prints resp as JSON in JSON mode; in text mode it only reports a
// request-level error.
func (a *app) emit(resp api.Response) error {
	if a.json() {
		return a.out.JSON(resp)
	}
	if resp.Error != "" {
		a.out.Error(resp.Error)
	}
	return nil
}

func (a *app) printEncoded(resp api.Response, quiet bool) {
	res := resp.Encoded
	if !res.OK() {
		a.out.Error(res.Err.Message)
		return
	}
	if quiet {
		a.out.Plain("%s", resp.Display)
		return
	}
	s, _ := numeral.Lookup(string(res.System))
	a.out.Title(fmt.Sprintf("%s · %d", s.Name, res.Number))
	a.out.Glyphs(resp.Display)
	a.printSteps(res.Steps)
}

func (a *app) printSteps(steps []numeral.Step) {
	for _, step := range steps {
		a.out.Bullet("%-8d %s  %s", step.Value, step.Symbol, a.out.Styles.Muted.Render(step.Explanation))
	}
}

func (a *app) printLint(r *lint.Result) {
	switch {
	case !r.Valid:
		a.out.Error("invalid")
	case len(r.Issues) == 0:
		a.out.Success(fmt.Sprintf("%d, canonical", *r.Value))
	default:
		a.out.Warning(fmt.Sprintf("%d, with warnings", *r.Value))
	}
	for _, issue := range r.Issues {
		a.out.Bullet("%s [%s] %s", issue.Severity, issue.Rule, issue.Message)
	}
	if r.Canonical != "" && len(r.Issues) > 0 {
		a.out.Field("canonical", r.Canonical)
	}
}

func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(arg, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", arg)
	}
	return n, nil
}

// lineInput joins arguments into one notation line as a JSON string.
func lineInput(args []string) json.RawMessage {
	raw, _ := json.Marshal(strings.Join(args, " "))
	return raw
}

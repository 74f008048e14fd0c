package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmcpheron/ancient-number-converter/internal/ux"
	"github.com/jmcpheron/ancient-number-converter/pkg/api"
	"github.com/jmcpheron/ancient-number-converter/pkg/history"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
	"github.com/jmcpheron/ancient-number-converter/pkg/showcase"
)

func (a *app) systemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "systems [system]",
		Short: "List the numeral systems, or describe one",
		Long: `With no argument, list every system. With a system id, describe its
glyphs and history: an overview, notable facts, how the numerals were used
and sources for further reading.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				s, ok := numeral.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%s: %q", numeral.ErrUnknownSystem, args[0])
				}
				resp := api.Handle(api.Request{Op: api.OpHistory, System: args[0]})
				if a.json() {
					return a.out.JSON(struct {
						System  *numeral.System `json:"system"`
						History *history.Entry  `json:"history,omitempty"`
					}{s, resp.History})
				}
				a.describe(s)
				if resp.History != nil {
					a.out.Plain("")
					a.printHistory(resp.History)
				}
				return nil
			}

			systems := numeral.Systems()
			if a.json() {
				return a.out.JSON(systems)
			}
			rows := make([][]string, 0, len(systems))
			for _, s := range systems {
				rows = append(rows, []string{
					string(s.ID), s.Name, strconv.Itoa(s.Base), s.Range.String(), string(s.Structure), s.Era,
				})
			}
			a.out.Table([]string{"ID", "NAME", "BASE", "RANGE", "STRUCTURE", "ERA"}, rows)
			return nil
		},
	}
}

func (a *app) describe(s *numeral.System) {
	a.out.Title(s.Name)
	a.out.Field("id", string(s.ID))
	a.out.Field("base", strconv.Itoa(s.Base))
	a.out.Field("range", s.Range.String())
	a.out.Field("structure", string(s.Structure))
	a.out.Field("era", s.Era)
	a.out.Field("region", s.Region)
	a.out.Plain("")
	a.out.Plain("%s", s.Description)
	a.out.Plain("")
	for _, g := range s.Glyphs {
		name := g.Name
		if name == "" {
			name = strconv.Itoa(g.Value)
		}
		a.out.Bullet("%s  %s", a.out.Styles.Glyph.Render(g.Symbol), name)
	}
}

func (a *app) printHistory(e *history.Entry) {
	a.out.Title("History")
	a.out.Plain("%s", e.Overview)
	a.out.Plain("")
	for _, f := range e.Facts {
		a.out.Bullet("%s", f)
	}
	a.out.Plain("")
	a.out.Field("usage", e.Usage)
	for _, src := range e.Sources {
		a.out.Field("source", fmt.Sprintf("%s %s", src.Title, a.out.Styles.Muted.Render(src.URL)))
	}
}

func (a *app) showcaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "showcase [system]...",
		Short: "Show curated numbers that illustrate each system",
		Long: `Encode and verify the curated examples of each system: Mayan zero,
Roman subtraction, Babylonian empty places, and so on. With no arguments,
every system is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if len(ids) == 0 {
				for _, id := range numeral.IDs() {
					ids = append(ids, string(id))
				}
			}

			tables := make(map[string][]showcase.Row, len(ids))
			failed := false
			for _, id := range ids {
				rows, err := showcase.Table(id)
				if err != nil {
					return err
				}
				tables[id] = rows
				for _, r := range rows {
					failed = failed || !r.Verification.Passed
				}
			}

			if a.json() {
				if err := a.out.JSON(tables); err != nil {
					return err
				}
			} else {
				for i, id := range ids {
					if i > 0 {
						a.out.Plain("")
					}
					a.printShowcase(id, tables[id])
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) printShowcase(id string, rows []showcase.Row) {
	s, _ := numeral.Lookup(id)
	a.out.Title(s.Name)
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		mark := a.out.Render(ux.IconSuccess)
		if !r.Verification.Passed {
			mark = a.out.Render(ux.IconError)
		}
		table = append(table, []string{strconv.Itoa(r.Number), r.Display, r.Highlight, mark})
	}
	a.out.Table([]string{"NUMBER", "NOTATION", "HIGHLIGHT", ""}, table)
}

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Tobionecenobi/SEB/core"
	"github.com/Tobionecenobi/SEB/examples"
	"github.com/Tobionecenobi/SEB/logger"
	"github.com/Tobionecenobi/SEB/refpath"
	"github.com/Tobionecenobi/SEB/subunit"
	"github.com/Tobionecenobi/SEB/world"
)

// significantDigits is the precision of printed numbers.
const significantDigits = 12

// printResult writes the expression and, when asked, its free parameters.
func printResult(out io.Writer, res world.Result, withParams bool) {
	fmt.Fprintln(out, res.String())
	if withParams {
		fmt.Fprintf(out, "parameters: %s\n", strings.Join(res.Parameters().Names(), ", "))
	}
}

func (a *app) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [name...]",
		Short: "Print the nesting tree of structures",
		Long:  "Print the nesting tree below each named structure, or below every top-level name when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				if names, err = topLevel(w); err != nil {
					return err
				}
			}
			for _, n := range names {
				if err := w.FolderPrint(cmd.OutOrStdout(), n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List every link in the order it was made",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			data := pterm.TableData{{"#", "new", "existing"}}
			for i, l := range w.Links() {
				data = append(data, []string{strconv.Itoa(i + 1), l.A, l.B})
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
}

func (a *app) newGraphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs",
		Short: "List graphs and their members",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			graphs, err := w.Graphs()
			if err != nil {
				return err
			}
			data := pterm.TableData{{"graph", "members"}}
			for _, g := range graphs {
				members := make([]string, 0, len(g.Members))
				for _, m := range g.Members {
					if m.Kind == core.KindStructure {
						members = append(members, fmt.Sprintf("%s(%d)", m.Name, m.Wraps))
						continue
					}
					members = append(members, m.Name)
				}
				data = append(data, []string{strconv.Itoa(g.ID), strings.Join(members, " ")})
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
}

func (a *app) newFormFactorCmd() *cobra.Command {
	var unnormalized, withParams bool
	cmd := &cobra.Command{
		Use:   "formfactor <name>",
		Short: "Print the form factor of a sub-unit or structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			query := w.FormFactor
			if unnormalized {
				query = w.FormFactorUnnormalized
			}
			res, err := query(args[0], opts...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, withParams)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unnormalized, "unnormalized", false, "Skip division by the squared excess scattering length")
	cmd.Flags().BoolVar(&withParams, "params", false, "List the free parameters")
	return cmd
}

func (a *app) newAmplitudeCmd() *cobra.Command {
	var unnormalized, withParams bool
	cmd := &cobra.Command{
		Use:   "amplitude <reference>",
		Short: "Print the form factor amplitude relative to a reference point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			query := w.FormFactorAmplitude
			if unnormalized {
				query = w.FormFactorAmplitudeUnnormalized
			}
			res, err := query(args[0], opts...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, withParams)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unnormalized, "unnormalized", false, "Skip division by the excess scattering length")
	cmd.Flags().BoolVar(&withParams, "params", false, "List the free parameters")
	return cmd
}

func (a *app) newPhaseCmd() *cobra.Command {
	var showPath, withParams bool
	cmd := &cobra.Command{
		Use:   "phase <reference> <reference>",
		Short: "Print the phase factor between two reference points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			if showPath {
				path, err := w.Path(args[0], args[1], opts...)
				if err != nil {
					return err
				}
				if err := world.WritePath(cmd.OutOrStdout(), path, "", " -> "); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			res, err := w.PhaseFactor(args[0], args[1], opts...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, withParams)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPath, "path", false, "Print the reference points the phase factor steps through instead")
	cmd.Flags().BoolVar(&withParams, "params", false, "List the free parameters")
	return cmd
}

func (a *app) newRg2Cmd() *cobra.Command {
	var eval bool
	var params []string
	cmd := &cobra.Command{
		Use:   "rg2 <name>",
		Short: "Print the squared radius of gyration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, doc, err := a.load()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			res, err := w.RadiusOfGyration2(args[0], opts...)
			if err != nil {
				return err
			}
			if !eval {
				printResult(cmd.OutOrStdout(), res, false)
				return nil
			}
			pl, err := parameters(doc, params)
			if err != nil {
				return err
			}
			v, err := world.Evaluate(res.Expr, pl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', significantDigits, 64))
			return nil
		},
	}
	cmd.Flags().BoolVar(&eval, "eval", false, "Evaluate with the description's parameters")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Parameter value as name=value (repeatable)")
	return cmd
}

func (a *app) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <name|reference>",
		Short: "Count scatterer pairs of a name, or scatterers relative to a reference point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, _, err := a.load()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			query := w.CountPairs
			if refpath.HasPeriod(args[0]) {
				query = w.Count
			}
			res, err := query(args[0], opts...)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res, false)
			return nil
		},
	}
}

func (a *app) newEvaluateCmd() *cobra.Command {
	var (
		params     []string
		qmin, qmax float64
		points     int
		logGrid    bool
		out        string
	)
	cmd := &cobra.Command{
		Use:   "evaluate <name>",
		Short: "Evaluate the form factor over a q grid",
		Long:  "Evaluate the form factor of a name over a linear or logarithmic q grid. Parameters default to the description's params section; --param overrides them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, doc, err := a.load()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			pl, err := parameters(doc, params)
			if err != nil {
				return err
			}
			grid := world.Linspace
			if logGrid {
				grid = world.Logspace
			}
			qs, err := grid(qmin, qmax, points)
			if err != nil {
				return err
			}
			res, err := w.FormFactor(args[0], opts...)
			if err != nil {
				return err
			}

			comment := fmt.Sprintf("Form factor of %s", args[0])
			if out == "" {
				_, err = world.WriteSeries(cmd.OutOrStdout(), res.Expr, pl, qs, comment, "# ")
				return err
			}
			if _, err := world.WriteSeriesFile(out, res.Expr, pl, qs, comment, "# "); err != nil {
				return err
			}
			logger.Logger.Debugw("series written", logger.FieldName, args[0], logger.FieldPath, out)
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("wrote %d points to %s", len(qs), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "Parameter value as name=value (repeatable)")
	cmd.Flags().Float64Var(&qmin, "qmin", 0.01, "Lowest q")
	cmd.Flags().Float64Var(&qmax, "qmax", 1, "Highest q")
	cmd.Flags().IntVar(&points, "points", 100, "Number of q points")
	cmd.Flags().BoolVar(&logGrid, "log", false, "Space q logarithmically")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the series to this file instead of stdout")
	return cmd
}

// newKindsCmd lists the sub-unit kinds and their reference points.
func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List sub-unit kinds and their reference points",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"kind", "reference points"}}
			for _, k := range subunit.Kinds() {
				u, err := subunit.New(k)
				if err != nil {
					return err
				}
				data = append(data, []string{k, strings.Join(u.References(), " ")})
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
}

// newExamplesCmd lists the built-in examples usable with --example.
func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List built-in examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"example", "steps", "parameters"}}
			for _, d := range examples.All() {
				params := make([]string, 0, len(d.Params))
				for k := range d.Params {
					params = append(params, k)
				}
				sort.Strings(params)
				data = append(data, []string{d.Name, strconv.Itoa(len(d.Steps)), strings.Join(params, " ")})
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
}

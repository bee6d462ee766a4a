package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/ticks"

	_ "time/tzdata"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type settings struct {
	width     float64
	height    float64
	orient    string
	styleFile string
	fontFile  string
	verbose   bool

	pattern  string
	format   string
	locale   string
	timezone string
	hint     float64
	yhint    float64
	space    float64
	fontSize float64
	offset   float64
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var set settings
	root := &cobra.Command{
		Use:           "ticks",
		Short:         "Compute the ticks of chart axes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if set.verbose {
				ticks.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	flags := root.PersistentFlags()
	flags.Float64VarP(&set.width, "width", "w", defaultWidth, "working space of the axis in pixels")
	flags.Float64Var(&set.height, "height", defaultHeight, "working space of the vertical axis of a chart")
	flags.StringVarP(&set.orient, "orient", "o", "bottom", "orientation of the axis: top, right, bottom, left")
	flags.StringVar(&set.styleFile, "style", "", "YAML style file")
	flags.StringVar(&set.fontFile, "font", "", "TrueType font used to measure labels (default Go Regular)")
	flags.BoolVarP(&set.verbose, "verbose", "v", false, "log layout decisions to stderr")
	flags.StringVarP(&set.pattern, "pattern", "p", "", "date pattern overriding the default patterns")
	flags.StringVar(&set.format, "strftime", "", "date format with strftime specifiers overriding the default patterns")
	flags.StringVar(&set.locale, "locale", ticks.DefaultLocale, "locale of the labels")
	flags.StringVar(&set.timezone, "tz", ticks.DefaultTimezone, "timezone of date labels")
	flags.Float64Var(&set.hint, "hint", ticks.DefaultSpacingHint, "minimum spacing in pixels between ticks")
	flags.Float64Var(&set.yhint, "y-hint", ticks.DefaultYSpacingHint, "minimum spacing in pixels between ticks of vertical axes")
	flags.Float64Var(&set.space, "space", ticks.DefaultTickSpace, "fraction of the working space used by ticks")
	flags.Float64Var(&set.fontSize, "font-size", ticks.DefaultFontSize, "size of the label font")
	flags.Float64Var(&set.offset, "label-offset", 0, "also print label anchors this many pixels outside the axis")

	root.AddCommand(
		numberCmd(&set),
		dateCmd(&set),
		logCmd(&set),
		categoryCmd(&set),
		chartCmd(&set),
	)
	return root
}

func numberCmd(set *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "number MIN MAX",
		Short: "ticks of a numeric axis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max, err := parseNumbers(args[0], args[1])
			if err != nil {
				return err
			}
			return set.run(cmd, func(axis ticks.Axis, style ticks.Style, opts []ticks.Option) (ticks.Result, error) {
				c, err := ticks.NewNumeric(axis.Direction(), axis.Length, min, max, style, opts...)
				if err != nil {
					return ticks.Result{}, err
				}
				return c.Result(), nil
			})
		},
	}
}

func logCmd(set *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "log MIN MAX",
		Short: "ticks of a logarithmic axis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max, err := parseNumbers(args[0], args[1])
			if err != nil {
				return err
			}
			return set.run(cmd, func(axis ticks.Axis, style ticks.Style, opts []ticks.Option) (ticks.Result, error) {
				c, err := ticks.NewLog(axis.Direction(), axis.Length, min, max, style, opts...)
				if err != nil {
					return ticks.Result{}, err
				}
				return c.Result(), nil
			})
		},
	}
}

func dateCmd(set *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "date FROM TO",
		Short: "ticks of a time axis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseTimes(args[0], args[1])
			if err != nil {
				return err
			}
			return set.run(cmd, func(axis ticks.Axis, style ticks.Style, opts []ticks.Option) (ticks.Result, error) {
				c, err := ticks.NewDateFromTime(axis.Direction(), axis.Length, from, to, style, opts...)
				if err != nil {
					return ticks.Result{}, err
				}
				return c.Result(), nil
			})
		},
	}
}

func categoryCmd(set *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "category NAME...",
		Short: "ticks of a category axis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return set.run(cmd, func(axis ticks.Axis, style ticks.Style, opts []ticks.Option) (ticks.Result, error) {
				c, err := ticks.NewCategory(axis.Direction(), axis.Length, args, style, opts...)
				if err != nil {
					return ticks.Result{}, err
				}
				return c.Result(), nil
			})
		},
	}
}

func chartCmd(set *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "chart FROM TO MIN MAX",
		Short: "ticks of the time axis and the numeric axis of a chart",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseTimes(args[0], args[1])
			if err != nil {
				return err
			}
			min, max, err := parseNumbers(args[2], args[3])
			if err != nil {
				return err
			}
			style, opts, err := set.load(cmd)
			if err != nil {
				return err
			}
			var (
				bottom = ticks.Axis{Orientation: ticks.OrientBottom, Length: set.width, Top: set.height}
				left   = ticks.Axis{Orientation: ticks.OrientLeft, Length: set.height}
				xs, ys ticks.Result
			)
			grp, _ := errgroup.WithContext(context.Background())
			grp.Go(func() error {
				c, err := ticks.NewDateFromTime(bottom.Direction(), bottom.Length, from, to, style, opts...)
				if err == nil {
					xs = c.Result()
				}
				return err
			})
			grp.Go(func() error {
				c, err := ticks.NewNumeric(left.Direction(), left.Length, min, max, style, opts...)
				if err == nil {
					ys = c.Result()
				}
				return err
			})
			if err := grp.Wait(); err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()
			writeAxis(w, "x", bottom, xs, set.offset)
			writeAxis(w, "y", left, ys, set.offset)
			return nil
		},
	}
}

type computeFunc func(ticks.Axis, ticks.Style, []ticks.Option) (ticks.Result, error)

func (s *settings) run(cmd *cobra.Command, compute computeFunc) error {
	orient, err := ticks.ParseOrientation(s.orient)
	if err != nil {
		return err
	}
	style, opts, err := s.load(cmd)
	if err != nil {
		return err
	}
	axis := ticks.Axis{
		Orientation: orient,
		Length:      s.width,
	}
	res, err := compute(axis, style, opts)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	writeAxis(w, "", axis, res, s.offset)
	return nil
}

// load reads the style file, then applies the flags explicitly set on the
// command line.
func (s *settings) load(cmd *cobra.Command) (ticks.Style, []ticks.Option, error) {
	style := ticks.DefaultStyle()
	if s.styleFile != "" {
		r, err := os.Open(s.styleFile)
		if err != nil {
			return style, nil, err
		}
		defer r.Close()
		if style, err = ticks.LoadStyle(r); err != nil {
			return style, nil, fmt.Errorf("%s: %w", s.styleFile, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("pattern") {
		style.DatePattern = s.pattern
	}
	if flags.Changed("strftime") {
		style.DateFormat = s.format
	}
	if flags.Changed("locale") || s.styleFile == "" {
		style.Locale = s.locale
	}
	if flags.Changed("tz") || s.styleFile == "" {
		style.Timezone = s.timezone
	}
	if flags.Changed("hint") || s.styleFile == "" {
		style.SpacingHint = s.hint
	}
	if flags.Changed("y-hint") || s.styleFile == "" {
		style.YSpacingHint = s.yhint
	}
	if flags.Changed("space") || s.styleFile == "" {
		style.TickSpace = s.space
	}
	if flags.Changed("font-size") || s.styleFile == "" {
		style.Text.Size = s.fontSize
	}
	if err := style.Validate(); err != nil {
		return style, nil, err
	}
	data := goregular.TTF
	if s.fontFile != "" {
		buf, err := os.ReadFile(s.fontFile)
		if err != nil {
			return style, nil, err
		}
		data = buf
	}
	m, err := ticks.NewFontMeasurer(data, style.Text.Size)
	if err != nil {
		return style, nil, err
	}
	return style, []ticks.Option{ticks.WithMeasurer(m)}, nil
}

// writeAxis prints one row per tick: its position, its label and, when
// offset is positive, the anchor of the label.
func writeAxis(w io.Writer, prefix string, axis ticks.Axis, res ticks.Result, offset float64) {
	anchors := axis.Anchors(res, offset)
	for i, pt := range axis.Place(res) {
		if prefix != "" {
			fmt.Fprintf(w, "%s\t", prefix)
		}
		fmt.Fprintf(w, "%.2f\t%.2f\t%s", pt.X, pt.Y, res.Labels[i])
		if offset > 0 {
			fmt.Fprintf(w, "\t%.2f\t%.2f", anchors[i].X, anchors[i].Y)
		}
		fmt.Fprintln(w)
	}
}

func parseNumbers(fst, lst string) (float64, float64, error) {
	min, err := strconv.ParseFloat(fst, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: not a number", fst)
	}
	max, err := strconv.ParseFloat(lst, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: not a number", lst)
	}
	return min, max, nil
}

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimes(fst, lst string) (time.Time, time.Time, error) {
	from, err := parseTime(fst)
	if err != nil {
		return from, from, err
	}
	to, err := parseTime(lst)
	return from, to, err
}

func parseTime(str string) (time.Time, error) {
	for _, f := range timeFormats {
		t, err := time.Parse(f, str)
		if err == nil {
			return t, nil
		}
	}
	if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	return time.Time{}, fmt.Errorf("%s: not a valid time", str)
}

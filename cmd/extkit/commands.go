package main

import (
	"fmt"
	"iter"
	"maps"
	"math/rand/v2"
	"reflect"
	"slices"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ib-77/extkit/pkg/ext/enum"
	"github.com/ib-77/extkit/pkg/ext/seq"
	"github.com/ib-77/extkit/pkg/ext/text"
	"github.com/ib-77/extkit/pkg/ext/timex"
)

func (a *app) agoCmd() *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "ago <time>",
		Short: "Describe how long ago a timestamp was",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}

			ref := time.Now().UTC()
			if now != "" {
				if ref, err = parseTime(now); err != nil {
					return err
				}
			}

			a.logger.WithFields(log.Fields{"time": t, "now": ref}).Debug("formatting relative time")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), timex.ReadableTimeAt(t, ref))
			return err
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference instant (defaults to the current time)")
	return cmd
}

func (a *app) betweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between <time> <start> <end>",
		Short: "Report whether a time lies within an inclusive range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			times := make([]time.Time, len(args))
			for i, arg := range args {
				t, err := parseTime(arg)
				if err != nil {
					return err
				}
				times[i] = t
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), timex.Between(times[0], times[1], times[2]))
			return err
		},
	}
}

func (a *app) weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <date>",
		Short: "Classify a date as a working day or weekend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}

			kind := "working-day"
			if timex.IsWeekend(t) {
				kind = "weekend"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", toWeekday(t.Weekday()), kind)
			return err
		},
	}
}

func toWeekday(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(d)
}

func (a *app) stripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text]",
		Short: "Remove markup tags (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			out := text.StripMarkup(in)
			a.logger.WithFields(log.Fields{"input_len": len(in), "result_len": len(out)}).Debug("stripped markup")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (a *app) reduceCmd() *cobra.Command {
	var (
		length int
		suffix string
		strip  bool
	)

	cmd := &cobra.Command{
		Use:   "reduce [text]",
		Short: "Shorten text to a display length (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("length") {
				length = a.config.Reduce.Length
			}
			if !cmd.Flags().Changed("suffix") {
				suffix = a.config.Reduce.Suffix
			}

			chain := text.From(in)
			if strip {
				chain = chain.StripMarkup()
			}

			out, err := chain.Reduce(length, suffix).
				Ensure(func(s string) {
					a.logger.WithFields(log.Fields{"input_len": len(in), "result_len": len(s)}).Debug("reduced text")
				}, nil).
				Result()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&length, "length", 80, "display length including the suffix")
	cmd.Flags().StringVar(&suffix, "suffix", "...", "suffix appended to reduced text")
	cmd.Flags().BoolVar(&strip, "strip", false, "strip markup before reducing")
	return cmd
}

func (a *app) digitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digits [text]",
		Short: "Keep only decimal digits (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text.OnlyDigits(in))
			return err
		},
	}
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <item>...",
		Short: "Count occurrences of each item",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := seq.CountInstances(slices.Values(args))
			if err != nil {
				return err
			}

			for _, k := range slices.Sorted(maps.Keys(counts)) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", k, counts[k]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) distinctCmd() *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "distinct <item>...",
		Short: "Drop repeated items, keeping the first occurrence",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := func(s string) string { return s }
			if fold {
				key = strings.ToLower
			}
			return printLines(cmd, seq.DistinctBy(slices.Values(args), key))
		},
	}

	cmd.Flags().BoolVar(&fold, "fold", false, "compare items case-insensitively")
	return cmd
}

func (a *app) shuffleCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "shuffle <item>...",
		Short: "Print items in random order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var src rand.Source
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
				a.logger.WithField("seed", seed).Debug("using seeded source")
			}
			return printLines(cmd, slices.Values(seq.ShuffleWith(slices.Values(args), src)))
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible order")
	return cmd
}

func (a *app) takeUntilCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take-until <stop> <item>...",
		Short: "Print items up to, not including, the stop item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := args[0]
			return printLines(cmd, seq.TakeUntil(slices.Values(args[1:]), func(s string) bool { return s == stop }))
		},
	}
}

func (a *app) enumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enum",
		Short: "Show the registered Weekday enumeration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := reflect.TypeFor[Weekday]()

			list, err := enum.EnumToList[Weekday](t)
			if err != nil {
				return err
			}
			dict, err := enum.EnumToDictionary(t)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range list {
				if _, err := fmt.Fprintf(out, "%s=%d\n", d, dict[d.String()]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printLines(cmd *cobra.Command, items iter.Seq[string]) error {
	for item := range items {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), item); err != nil {
			return err
		}
	}
	return nil
}

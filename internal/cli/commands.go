package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

func newChartCmd(opts *options) *cobra.Command {
	var (
		birth       birthFlags
		contextOnly bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Build a sidereal birth chart with dasha, yogas and doshas",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := birth.birthData()
			if err != nil {
				return err
			}
			report, err := opts.engine.BuildReport(cmd.Context(), b, time.Now())
			if err != nil {
				return err
			}
			if contextOnly {
				return opts.writeJSON(cmd, report.Context)
			}
			return opts.writeJSON(cmd, report)
		},
	}
	birth.register(cmd)
	cmd.Flags().BoolVar(&contextOnly, "context", false, "Print only the flat chat context fields")
	return cmd
}

func newMatchCmd(opts *options) *cobra.Command {
	var groom, bride string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Ashtakoota Guna Milan for a couple",
		Example: `  jyotish match --groom 1990-03-15T12:00,28.61,77.21,5.5,Arjun --bride 1992-07-01T06:30,19.08,72.88,5.5,Meera`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseBirthSpec(groom)
			if err != nil {
				return fmt.Errorf("groom: %w", err)
			}
			b, err := parseBirthSpec(bride)
			if err != nil {
				return fmt.Errorf("bride: %w", err)
			}
			result, err := opts.engine.MatchCharts(cmd.Context(), g, b)
			if err != nil {
				return err
			}
			return opts.writeJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&groom, "groom", "", "Groom birth: date[Ttime],lat,lon,tz[,name]")
	cmd.Flags().StringVar(&bride, "bride", "", "Bride birth: date[Ttime],lat,lon,tz[,name]")
	_ = cmd.MarkFlagRequired("groom")
	_ = cmd.MarkFlagRequired("bride")
	return cmd
}

func newPanchangCmd(opts *options) *cobra.Command {
	var (
		date         string
		lat, lon, tz float64
	)

	cmd := &cobra.Command{
		Use:   "panchang",
		Short: "Daily panchang with muhurta windows for a place",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.ValidateUTCOffset(tz); err != nil {
				return err
			}
			loc := domain.FixedZone(tz)
			day := time.Now().In(loc)
			if date != "" {
				d, err := time.ParseInLocation(time.DateOnly, date, loc)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
				day = d
			}

			result, err := opts.engine.Panchang(cmd.Context(), day, lat, lon, tz)
			if err != nil {
				return err
			}
			return opts.writeJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD, today in the given zone when empty")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude, north positive")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude, east positive")
	cmd.Flags().Float64Var(&tz, "tz", 0, "UTC offset in hours")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

func newHoroscopeCmd(opts *options) *cobra.Command {
	var date, month string

	cmd := &cobra.Command{
		Use:   "horoscope <sign>",
		Short: "Daily or monthly horoscope for a moon sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sign, err := domain.ParseSign(args[0])
			if err != nil {
				return err
			}

			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("month must be YYYY-MM: %w", err)
				}
				return opts.writeJSON(cmd, opts.engine.MonthlyHoroscope(sign, m.Year(), m.Month()))
			}

			day := time.Now().UTC()
			if date != "" {
				day, err = time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
			}
			return opts.writeJSON(cmd, opts.engine.DailyHoroscope(sign, day))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day YYYY-MM-DD for the daily horoscope")
	cmd.Flags().StringVar(&month, "month", "", "Month YYYY-MM, prints the monthly horoscope")
	cmd.MarkFlagsMutuallyExclusive("date", "month")
	return cmd
}

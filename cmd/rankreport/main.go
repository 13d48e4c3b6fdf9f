// Command rankreport ranks a saved request offline and optionally writes the
// ranked venues and a score chart, for tuning weights against real fixtures.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"weathereats/models/weather"
	"weathereats/ranking"
	services "weathereats/service"
	"weathereats/util"
)

const maxReportResults = 500

type options struct {
	in      string
	out     string
	chart   string
	workers int
	top     int
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("rankreport", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.in, "in", "", "Path to a rank request JSON file [required]")
	fs.StringVar(&opts.out, "out", "", "Write the ranking response as JSON to this path")
	fs.StringVar(&opts.chart, "chart", "", "Write an HTML score chart to this path")
	fs.IntVar(&opts.workers, "workers", 1, "Number of scoring workers")
	fs.IntVar(&opts.top, "top", 10, "Number of venues to print")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.in == "" {
		fs.Usage()
		return opts, errors.New("-in is required")
	}
	return opts, nil
}

func run(opts options, logOut io.Writer) error {
	req, err := util.ReadRankRequestFromJSON(opts.in)
	if err != nil {
		return err
	}

	logger := util.NewLogger("info", logOut)
	svc := services.NewRankingService(
		ranking.NewEngine(ranking.WithWorkers(opts.workers)),
		nil, weather.DefaultPreferences(), maxReportResults, nil, logger)

	resp := svc.Rank(req.Venues, req.Weather, req.Preferences, req.Limit)
	util.PrintRankingPartially(resp, opts.top)

	if opts.out != "" {
		if err := util.WriteJSONFile(opts.out, resp); err != nil {
			return err
		}
	}
	if opts.chart != "" {
		if err := util.WriteRankingChart(resp.Venues, describe(req.Weather), opts.chart); err != nil {
			return err
		}
	}
	return nil
}

func describe(obs weather.Observation) string {
	parts := []string{fmt.Sprintf("%.1f°C", obs.TemperatureC),
		fmt.Sprintf("%.1f mm/h", obs.PrecipitationMmPerHour),
		fmt.Sprintf("%.1f m/s", obs.WindSpeedMps)}
	if obs.ConditionLabel != "" {
		parts = append([]string{obs.ConditionLabel}, parts...)
	}
	return strings.Join(parts, ", ")
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("rankreport: %v", err)
	}
	if err := run(opts, os.Stderr); err != nil {
		log.Fatalf("rankreport: %v", err)
	}
}

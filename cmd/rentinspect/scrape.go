package main

import (
	"fmt"
	"os"

	"rentinspect/internal/report"

	"github.com/urfave/cli/v2"
)

var scrapeCommand = &cli.Command{
	Name:      "scrape",
	Usage:     "Read label/value pairs out of a saved form page",
	ArgsUsage: "<file.html>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Write a printable report here instead of listing the pairs",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Report title",
			Value: "Inspection Report",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected one html file, got %d arguments", c.NArg())
		}

		f, err := os.Open(c.Args().First())
		if err != nil {
			return fmt.Errorf("failed to open form page: %w", err)
		}
		defer f.Close()

		fields, err := report.Scrape(f)
		if err != nil {
			return err
		}

		out := c.String("out")
		if out == "" {
			for _, field := range fields {
				fmt.Printf("%s: %s\n", field.Label, field.Value)
			}
			return nil
		}

		w, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer w.Close()

		doc := report.BuildFromPairs(c.String("title"), fields, report.Options{AutoPrint: true})

		return report.Render(w, doc)
	},
}

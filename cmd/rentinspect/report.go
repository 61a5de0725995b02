package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"rentinspect/internal/inspection"
	"rentinspect/internal/report"
	"rentinspect/internal/storage"

	"github.com/urfave/cli/v2"
)

var reportCommand = &cli.Command{
	Name:  "report",
	Usage: "Render a printable report from a saved inspection state file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Aliases:  []string{"i"},
			Usage:    "Inspection state JSON (from sample or the Download State link)",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Output directory",
			Value:   ".",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "Open the print dialog when the report is opened",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "archive",
			Usage: "Also upload the report to S3_BUCKET_NAME",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg)

		sess, err := readSession(c.String("in"))
		if err != nil {
			return err
		}

		doc := report.Build(sess.Data, sess.Rooms, report.Options{
			BrandName: cfg.BrandName,
			AutoPrint: c.Bool("print"),
		})

		var buf bytes.Buffer
		if err := report.Render(&buf, doc); err != nil {
			return err
		}

		path := filepath.Join(c.String("out"), report.SafeFilename(doc.Filename)+".html")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		logger.WithField("path", path).WithField("work_orders", doc.WorkOrders.Count).Info("report written")

		if !c.Bool("archive") {
			return nil
		}

		s3Client, err := newS3Client(c.Context, cfg)
		if err != nil {
			return err
		}
		if s3Client == nil {
			return fmt.Errorf("set S3_BUCKET_NAME to archive reports")
		}

		key, err := storage.NewReportArchive(s3Client, cfg.S3BucketName).Put(c.Context, doc.Filename, buf.Bytes())
		if err != nil {
			return err
		}

		logger.WithField("key", key).Info("report archived")

		return nil
	},
}

func readSession(path string) (*inspection.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	defer f.Close()

	sess, err := inspection.DecodeSession(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", path, err)
	}

	return sess, nil
}

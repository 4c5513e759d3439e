package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/hrms/importer"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/filesystem"
)

// ObjectReport is the outcome of importing one uploaded sheet.
type ObjectReport struct {
	Bucket  string   `json:"bucket"`
	Key     string   `json:"key"`
	Created int      `json:"created"`
	Invalid []string `json:"invalid,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type Handler struct {
	dm       *core.DatabaseManager
	objects  filesystem.ObjectGetter
	notifier communication.Notifier
}

// Handle imports every .csv/.xlsx object named in the event. A failing object
// is reported and does not stop the others.
func (h *Handler) Handle(ctx context.Context, event events.S3Event) ([]ObjectReport, error) {
	var reports []ObjectReport
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}
		if !isSheet(key) {
			log.Printf("[INFO] ignoring s3://%s/%s", bucket, key)
			continue
		}

		report := h.importObject(ctx, bucket, key)
		h.notify(report)
		reports = append(reports, report)
	}
	return reports, nil
}

func (h *Handler) importObject(ctx context.Context, bucket, key string) ObjectReport {
	report := ObjectReport{Bucket: bucket, Key: key}

	rows, rejected, err := importer.ReadS3(ctx, h.objects, bucket, key)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	for _, r := range rejected {
		report.Invalid = append(report.Invalid, r.Error())
	}

	result, err := importer.Import(ctx, h.dm, rows)
	if result != nil {
		report.Created = result.Created
		for _, r := range result.Skipped {
			report.Skipped = append(report.Skipped, r.Error())
		}
	}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

func (h *Handler) notify(r ObjectReport) {
	var err error
	if r.Error != "" {
		err = h.notifier.Error(fmt.Sprintf("employee import s3://%s/%s failed after %d rows: %s", r.Bucket, r.Key, r.Created, r.Error))
	} else {
		err = h.notifier.Info(fmt.Sprintf("employee import s3://%s/%s: created %d, invalid %d, skipped %d", r.Bucket, r.Key, r.Created, len(r.Invalid), len(r.Skipped)))
	}
	if err != nil {
		log.Printf("[ERROR] %v", err)
	}
}

func isSheet(key string) bool {
	key = strings.ToLower(key)
	return strings.HasSuffix(key, ".csv") || strings.HasSuffix(key, ".xlsx")
}

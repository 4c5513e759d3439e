package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/filesystem"
)

func newHandler(ctx context.Context) (*Handler, func(), error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	dm, err := core.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxConnections, core.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, nil, err
	}
	if err := dm.Migrate(ctx, model.Models()...); err != nil {
		dm.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	objects, err := filesystem.NewS3Client(ctx)
	if err != nil {
		dm.Close()
		return nil, nil, err
	}

	h := &Handler{dm: dm, objects: objects, notifier: communication.New(cfg.Slack)}
	return h, func() { dm.Close() }, nil
}

// usage outside Lambda: employee-import <bucket> <key>
func main() {
	ctx := context.Background()
	h, closeFn, err := newHandler(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(h.Handle)
		return
	}

	if len(os.Args) < 3 {
		log.Fatal("usage: employee-import <bucket> <key>")
	}
	var event events.S3Event
	event.Records = append(event.Records, events.S3EventRecord{})
	event.Records[0].S3.Bucket.Name = os.Args[1]
	event.Records[0].S3.Object.Key = os.Args[2]

	reports, err := h.Handle(ctx, event)
	if err != nil {
		log.Fatal(err)
	}
	out, _ := json.MarshalIndent(reports, "", "  ")
	fmt.Printf("[SUCCESS] Results:\n%s\n", string(out))
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	"hrmslite.com/hrms/hrms/importer"
	"hrmslite.com/hrms/hrms/model"
	"hrmslite.com/hrms/infrastructure/communication"
	"hrmslite.com/hrms/infrastructure/filesystem"
)

// usage: seed [employees.csv|employees.xlsx|s3://bucket/key]
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxConnections, core.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	if err := dm.Migrate(ctx, model.Models()...); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("schema is up to date")

	if len(os.Args) < 2 {
		return
	}

	src := os.Args[1]
	var rows []importer.Row
	var rejected []importer.RowError
	if bucket, key, ok := filesystem.ParseS3URL(src); ok {
		client, clientErr := filesystem.NewS3Client(ctx)
		if clientErr != nil {
			log.Fatal(clientErr)
		}
		rows, rejected, err = importer.ReadS3(ctx, client, bucket, key)
	} else {
		rows, rejected, err = importer.ReadFile(src)
	}
	if err != nil {
		log.Fatalf("read %s: %v", src, err)
	}
	for _, r := range rejected {
		log.Printf("[WARN] invalid %v", r)
	}

	notifier := communication.New(cfg.Slack)

	result, err := importer.Import(ctx, dm, rows)
	if err != nil {
		if notifyErr := notifier.Error(fmt.Sprintf("employee import from %s failed: %v", src, err)); notifyErr != nil {
			log.Println(notifyErr)
		}
		log.Fatalf("import: %v", err)
	}
	for _, r := range result.Skipped {
		log.Printf("[WARN] skipped %v", r)
	}
	summary := fmt.Sprintf("employee import from %s: created %d, invalid %d, skipped %d", src, result.Created, len(rejected), len(result.Skipped))
	if err := notifier.Info(summary); err != nil {
		log.Println(err)
	}
}

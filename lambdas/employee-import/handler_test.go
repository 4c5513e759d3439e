package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/core/coretest"
	"hrmslite.com/hrms/hrms/model"
)

type fakeS3 map[string]string

func (f fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

type recorder struct {
	infos  []string
	errors []string
}

func (r *recorder) Info(m string) error {
	r.infos = append(r.infos, m)
	return nil
}

func (r *recorder) Error(m string) error {
	r.errors = append(r.errors, m)
	return nil
}

func s3Event(bucket string, keys ...string) events.S3Event {
	var e events.S3Event
	for _, k := range keys {
		var r events.S3EventRecord
		r.S3.Bucket.Name = bucket
		r.S3.Object.Key = k
		e.Records = append(e.Records, r)
	}
	return e
}

func TestHandle(t *testing.T) {
	dm := coretest.NewDatabaseManager(t, model.Models()...)
	notes := &recorder{}
	h := &Handler{
		dm: dm,
		objects: fakeS3{
			"hr/new staff.csv": "employee_id,full_name,email,department\n" +
				"E1,Jane Doe,jane@x.com,Eng\n" +
				"E1,Jane Again,jane2@x.com,Eng\n" +
				"E2,Bob,bad-email,Ops\n",
		},
		notifier: notes,
	}

	reports, err := h.Handle(context.Background(), s3Event("hr", "new+staff.csv", "readme.txt", "gone.xlsx"))
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "new staff.csv", reports[0].Key)
	assert.Equal(t, 1, reports[0].Created)
	assert.Equal(t, []string{"line 4: Field 'email' must be a valid email"}, reports[0].Invalid)
	assert.Equal(t, []string{"line 3: Employee ID 'E1' already exists"}, reports[0].Skipped)
	assert.Empty(t, reports[0].Error)

	assert.Equal(t, "gone.xlsx", reports[1].Key)
	assert.NotEmpty(t, reports[1].Error)

	assert.Equal(t, []string{"employee import s3://hr/new staff.csv: created 1, invalid 1, skipped 1"}, notes.infos)
	require.Len(t, notes.errors, 1)
	assert.Contains(t, notes.errors[0], "employee import s3://hr/gone.xlsx failed")

	var count int64
	require.NoError(t, dm.DB.Model(&model.Employee{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

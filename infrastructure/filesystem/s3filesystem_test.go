package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 map[string]string

func (f fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestParseS3URL(t *testing.T) {
	tests := []struct {
		url        string
		bucket     string
		key        string
		wantParsed bool
	}{
		{"s3://hr-imports/2024/staff.csv", "hr-imports", "2024/staff.csv", true},
		{"s3://hr-imports/", "", "", false},
		{"s3://hr-imports", "", "", false},
		{"staff.csv", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			bucket, key, ok := ParseS3URL(tt.url)
			assert.Equal(t, tt.wantParsed, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestReadFile(t *testing.T) {
	client := fakeS3{"hr/staff.csv": "employee_id\nE1\n"}

	var buf bytes.Buffer
	require.NoError(t, ReadFile(context.Background(), client, "hr", "staff.csv", &buf))
	assert.Equal(t, "employee_id\nE1\n", buf.String())

	err := ReadFile(context.Background(), client, "hr", "missing.csv", &buf)
	assert.ErrorContains(t, err, "failed to get object missing.csv from bucket hr")
}

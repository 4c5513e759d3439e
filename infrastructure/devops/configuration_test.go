package devops

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	values map[string]string
	asked  []*ssm.GetParameterInput
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.asked = append(f.asked, in)
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return nil, errors.New("ParameterNotFound")
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(v)}}, nil
}

func TestReadParameter(t *testing.T) {
	client := &fakeSSM{values: map[string]string{"/hrms/config": "addr: :9000"}}

	v, err := ReadParameter(context.Background(), client, "/hrms/config")
	require.NoError(t, err)
	assert.Equal(t, "addr: :9000", v)
	require.Len(t, client.asked, 1)
	assert.True(t, aws.ToBool(client.asked[0].WithDecryption))

	_, err = ReadParameter(context.Background(), client, "/missing")
	assert.ErrorContains(t, err, "get parameter /missing")
}

func TestLoadYAMLParameter(t *testing.T) {
	client := &fakeSSM{values: map[string]string{
		"good": "name: hrms\nports: [1, 2]",
		"bad":  "name: [",
	}}

	var out struct {
		Name  string `yaml:"name"`
		Ports []int  `yaml:"ports"`
	}
	require.NoError(t, LoadYAMLParameter(context.Background(), client, "good", &out))
	assert.Equal(t, "hrms", out.Name)
	assert.Equal(t, []int{1, 2}, out.Ports)

	assert.Error(t, LoadYAMLParameter(context.Background(), client, "bad", &out))
}

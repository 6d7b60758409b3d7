package objectstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/pkg/resume"
)

type fakeS3 struct {
	objects map[string]string
	getErr  error
	headErr error
	lastKey string
}

func (f *fakeS3) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	f.lastKey = aws.StringValue(in.Key)
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[f.lastKey]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) HeadBucketWithContext(_ aws.Context, _ *s3.HeadBucketInput, _ ...request.Option) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func TestFetch(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{"cv/jane.pdf": "%PDF-1.7"}}
	s := newStore(fake, "resumes", 1<<20)

	data, err := s.Fetch(context.Background(), "cv/jane.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
	assert.Equal(t, "cv/jane.pdf", fake.lastKey)
	assert.Equal(t, "resumes", s.Bucket())
}

func TestFetchErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"missing key", nil, resume.ErrDocumentNotFound},
		{"http 404", awserr.NewRequestFailure(awserr.New("NotFound", "Not Found", nil), http.StatusNotFound, "req-1"), resume.ErrDocumentNotFound},
		{"access denied", awserr.New("AccessDenied", "Access Denied", nil), resume.ErrStorageUnavailable},
		{"network", errors.New("dial tcp: connection refused"), resume.ErrStorageUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(&fakeS3{getErr: tc.err}, "resumes", 0)
			_, err := s.Fetch(context.Background(), "absent.pdf")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFetchTooLarge(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{"big.pdf": strings.Repeat("x", 11)}}
	s := newStore(fake, "resumes", 10)

	_, err := s.Fetch(context.Background(), "big.pdf")
	assert.ErrorIs(t, err, resume.ErrTooLarge)
}

func TestPing(t *testing.T) {
	assert.NoError(t, newStore(&fakeS3{}, "resumes", 0).Ping(context.Background()))

	err := newStore(&fakeS3{headErr: awserr.New("Forbidden", "denied", nil)}, "resumes", 0).Ping(context.Background())
	assert.ErrorIs(t, err, resume.ErrStorageUnavailable)
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(Config{Bucket: "resumes"})
	assert.Error(t, err)

	s, err := New(Config{Endpoint: "https://acc.r2.cloudflarestorage.com", Bucket: "resumes", AccessKeyID: "id", SecretAccessKey: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "resumes", s.Bucket())
}

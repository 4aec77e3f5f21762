// Package mocks holds testify mocks for the interfaces the services depend on.
package mocks

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// MockKV is a mock store.KV.
type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKV) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockObjectPutter records uploads. Expectations match on bucket and content
// type; the uploaded bytes are kept in Body.
type MockObjectPutter struct {
	mock.Mock
	Body []byte
}

func (m *MockObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.ContentType))
	if params.Body != nil {
		m.Body, _ = io.ReadAll(params.Body)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

// MockDocumentRoot is a mock service.DocumentRoot.
type MockDocumentRoot struct {
	mock.Mock
}

func (m *MockDocumentRoot) SetDark(dark bool) {
	m.Called(dark)
}

func (m *MockDocumentRoot) SetAttribute(name, value string) {
	m.Called(name, value)
}

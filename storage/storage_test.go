package storage

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestNewKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^profiles/[0-9a-f-]{36}\.png$`)
	assert.Regexp(t, keyPattern, NewKey("profiles", "Photo.PNG"))

	assert.True(t, strings.HasPrefix(NewKey("", "a.pdf"), "uploads/"))
	assert.True(t, strings.HasPrefix(NewKey("../../etc", "a.pdf"), "etc/"))
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "uploads/a.png", KeyFromURL("https://bucket.s3.ap-south-1.amazonaws.com/uploads/a.png"))
	assert.Equal(t, "uploads/a.png", KeyFromURL("/uploads/a.png"))
	assert.Equal(t, "uploads/a.png", KeyFromURL("uploads/a.png"))
}

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile(fileHeader("a.png", "image/png", 1024)))
	assert.NoError(t, ValidateFile(fileHeader("a.pdf", "application/pdf", MaxFileSize)))
	assert.NoError(t, ValidateFile(fileHeader("a.docx", mimeDocx, 10)))

	assert.ErrorIs(t, ValidateFile(fileHeader("a.png", "image/png", MaxFileSize+1)), ErrFileTooLarge)
	assert.ErrorIs(t, ValidateFile(fileHeader("a.exe", "application/x-msdownload", 10)), ErrInvalidFileType)
	assert.ErrorIs(t, ValidateFile(fileHeader("a.txt", "text/plain; charset=utf-8", 10)), ErrInvalidFileType)
}

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir, "http://localhost:8000/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Put(ctx, "docs/a.pdf", "application/pdf", strings.NewReader("pdf"), 3)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/uploads/docs/a.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "docs", "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))

	require.NoError(t, store.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, "docs", "a.pdf"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is not an error
	assert.NoError(t, store.Delete(ctx, "docs/a.pdf"))

	_, err = store.Put(ctx, "../escape.txt", "text/plain", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, store.Delete(ctx, ""), ErrInvalidKey)
}

func TestLocalStorePutFailureLeavesNoFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir, "http://localhost:8000")
	require.NoError(t, err)

	body := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("connection reset")))
	_, err = store.Put(context.Background(), "docs/broken.pdf", "application/pdf", body, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	_, err = os.Stat(filepath.Join(dir, "docs", "broken.pdf"))
	assert.True(t, os.IsNotExist(err))
}

type fakeS3 struct {
	put     *s3.PutObjectInput
	deleted *s3.DeleteObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = in
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	client := &fakeS3{}
	store := &S3Store{client: client, bucket: "league-files", region: "ap-south-1"}
	ctx := context.Background()

	url, err := store.Put(ctx, "uploads/a.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	assert.Equal(t, "https://league-files.s3.ap-south-1.amazonaws.com/uploads/a.png", url)
	assert.Equal(t, "league-files", aws.ToString(client.put.Bucket))
	assert.Equal(t, "uploads/a.png", aws.ToString(client.put.Key))
	assert.Equal(t, types.ObjectCannedACLPublicRead, client.put.ACL)

	require.NoError(t, store.Delete(ctx, KeyFromURL(url)))
	assert.Equal(t, "uploads/a.png", aws.ToString(client.deleted.Key))
}

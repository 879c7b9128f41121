package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/internal/storage"
	"github.com/harshit2786/pdf-chat-be/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pkglog "github.com/harshit2786/pdf-chat-be/pkg/logger"
)

// fakeObjectStore records calls and serves blobs from memory.
type fakeObjectStore struct {
	blobs      map[string][]byte
	deletes    []string
	failUpload bool
	failDelete bool
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{blobs: map[string][]byte{}}
}

func (f *fakeObjectStore) Upload(_ context.Context, blobName string, r io.Reader, _ int64, _ string) (string, error) {
	if f.failUpload {
		return "", errors.New("upload failed")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.blobs[blobName] = data
	return "http://storage.local/bucket/" + blobName, nil
}

func (f *fakeObjectStore) Download(_ context.Context, blobName string) (io.ReadCloser, error) {
	data, ok := f.blobs[blobName]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeObjectStore) Delete(_ context.Context, blobName string) error {
	f.deletes = append(f.deletes, blobName)
	if f.failDelete {
		return errors.New("delete failed")
	}
	delete(f.blobs, blobName)
	return nil
}

// fakeVectorIndex records filtered deletes.
type fakeVectorIndex struct {
	deletedSingles []string
	deletedBatches [][]string
}

func (f *fakeVectorIndex) DeleteByPDFID(_ context.Context, pdfID string) error {
	f.deletedSingles = append(f.deletedSingles, pdfID)
	return nil
}

func (f *fakeVectorIndex) DeleteByPDFIDs(_ context.Context, pdfIDs []string) error {
	f.deletedBatches = append(f.deletedBatches, pdfIDs)
	return nil
}

// fakeJobQueue records published jobs.
type fakeJobQueue struct {
	jobs []models.IngestionJob
}

func (f *fakeJobQueue) Publish(_ context.Context, job models.IngestionJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "service_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Folder{}, &models.PDF{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store.NewStore(db)
}

func testLogger() *pkglog.Logger {
	return pkglog.New("test")
}

func seedUser(t *testing.T, s *store.Store, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "tester", Password: "hash"}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedFolder(t *testing.T, s *store.Store, userID uint, name string) *models.Folder {
	t.Helper()
	folder := &models.Folder{UserID: userID, Name: name}
	if err := s.CreateFolder(context.Background(), folder); err != nil {
		t.Fatalf("failed to seed folder: %v", err)
	}
	return folder
}

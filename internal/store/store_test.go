package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/harshit2786/pdf-chat-be/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "store_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Folder{}, &models.PDF{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewStore(db)
}

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "tester", Password: "hash"}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "a@b.com")

	byEmail, err := s.GetUserByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("GetUserByEmail() ID = %d, want %d", byEmail.ID, created.ID)
	}

	if err := s.UpdateUserAvatar(ctx, created.ID, "avatar-url"); err != nil {
		t.Fatalf("UpdateUserAvatar() error = %v", err)
	}
	byID, err := s.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if byID.Avatar != "avatar-url" {
		t.Errorf("avatar = %q, want %q", byID.Avatar, "avatar-url")
	}
}

func TestListFoldersSearchAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")

	names := []string{"Taxes", "Recipes", "Tax Returns"}
	for i, name := range names {
		folder := &models.Folder{
			UserID:    user.ID,
			Name:      name,
			CreatedAt: int64(1000 + i),
		}
		if err := s.CreateFolder(ctx, folder); err != nil {
			t.Fatalf("CreateFolder() error = %v", err)
		}
	}

	total, err := s.CountFolders(ctx, user.ID, "tax")
	if err != nil {
		t.Fatalf("CountFolders() error = %v", err)
	}
	if total != 2 {
		t.Errorf("CountFolders(tax) = %d, want 2", total)
	}

	folders, err := s.ListFolders(ctx, user.ID, "tax", 0, 6)
	if err != nil {
		t.Fatalf("ListFolders() error = %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("ListFolders(tax) returned %d folders, want 2", len(folders))
	}
	// Newest first.
	if folders[0].Name != "Tax Returns" || folders[1].Name != "Taxes" {
		t.Errorf("unexpected order: %q, %q", folders[0].Name, folders[1].Name)
	}
}

func TestListFoldersAnnotatesPDFCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")

	folder := &models.Folder{UserID: user.ID, Name: "Docs", CreatedAt: 1}
	if err := s.CreateFolder(ctx, folder); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		pdf := &models.PDF{
			UserID:   user.ID,
			FolderID: folder.ID,
			FileName: "f.pdf",
			URL:      "http://x/y/f.pdf",
			Status:   models.StatusInQueue,
		}
		if err := s.CreatePDF(ctx, pdf); err != nil {
			t.Fatalf("CreatePDF() error = %v", err)
		}
	}

	folders, err := s.ListFolders(ctx, user.ID, "", 0, 6)
	if err != nil {
		t.Fatalf("ListFolders() error = %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("ListFolders() returned %d folders, want 1", len(folders))
	}
	if folders[0].PDFNum != 3 {
		t.Errorf("PDFNum = %d, want 3", folders[0].PDFNum)
	}
}

func TestFoldersScopedToUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner@b.com")
	other := seedUser(t, s, "other@b.com")

	if err := s.CreateFolder(ctx, &models.Folder{UserID: owner.ID, Name: "Private"}); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}

	total, err := s.CountFolders(ctx, other.ID, "")
	if err != nil {
		t.Fatalf("CountFolders() error = %v", err)
	}
	if total != 0 {
		t.Errorf("CountFolders(other user) = %d, want 0", total)
	}
}

func TestDeletePDFsByFolder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")

	folder := &models.Folder{UserID: user.ID, Name: "Docs"}
	if err := s.CreateFolder(ctx, folder); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	pdf := &models.PDF{UserID: user.ID, FolderID: folder.ID, FileName: "f.pdf", URL: "u", Status: models.StatusInQueue}
	if err := s.CreatePDF(ctx, pdf); err != nil {
		t.Fatalf("CreatePDF() error = %v", err)
	}

	if err := s.DeletePDFsByFolder(ctx, folder.ID); err != nil {
		t.Fatalf("DeletePDFsByFolder() error = %v", err)
	}
	if _, err := s.GetPDFByID(ctx, pdf.ID); err == nil {
		t.Error("PDF record still present after DeletePDFsByFolder()")
	}
}

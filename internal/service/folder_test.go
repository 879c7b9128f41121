package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/harshit2786/pdf-chat-be/internal/models"
	"github.com/harshit2786/pdf-chat-be/internal/store"
)

func newFolderEnv(t *testing.T) (*FolderService, *fakeObjectStore, *fakeVectorIndex, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	objects := newFakeObjectStore()
	index := &fakeVectorIndex{}
	svc := NewFolderService(s, objects, index, testLogger())
	return svc, objects, index, s
}

func TestListPageBeyondLastResetsToFirst(t *testing.T) {
	svc, _, _, s := newFolderEnv(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")

	// 7 folders across 2 pages at page size 6.
	for i := 0; i < 7; i++ {
		if _, err := svc.Create(ctx, user.ID, fmt.Sprintf("folder-%d", i), "", "#fff"); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	page, err := svc.List(ctx, user.ID, 5, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1 (out-of-range pages reset)", page.CurrentPage)
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
	if len(page.Folders) != 6 {
		t.Errorf("len(Folders) = %d, want 6", len(page.Folders))
	}
}

func TestListEmptyHasOnePage(t *testing.T) {
	svc, _, _, s := newFolderEnv(t)
	user := seedUser(t, s, "a@b.com")

	page, err := svc.List(context.Background(), user.ID, 1, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.TotalPages != 1 || page.CurrentPage != 1 {
		t.Errorf("got currentPage=%d totalPages=%d, want 1/1", page.CurrentPage, page.TotalPages)
	}
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	svc, _, _, s := newFolderEnv(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")

	if _, err := svc.Create(ctx, user.ID, "Invoices 2024", "", ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, user.ID, "Receipts", "", ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	page, err := svc.List(ctx, user.ID, 1, "INVOICE")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page.Folders) != 1 || !strings.HasPrefix(page.Folders[0].Name, "Invoices") {
		t.Errorf("search returned %d folders, want the Invoices folder", len(page.Folders))
	}
}

func TestUpdateAndDeleteRequireOwnership(t *testing.T) {
	svc, _, _, s := newFolderEnv(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner@b.com")
	intruder := seedUser(t, s, "intruder@b.com")

	folder, err := svc.Create(ctx, owner.ID, "Private", "", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Update(ctx, intruder.ID, folder.ID, "Stolen", "", ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("Update(non-owner) error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, intruder.ID, folder.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete(non-owner) error = %v, want ErrForbidden", err)
	}
	// Missing folders surface the same way, so existence never leaks.
	if _, err := svc.Update(ctx, owner.ID, 9999, "x", "", ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("Update(missing) error = %v, want ErrForbidden", err)
	}
}

func TestGetReturnsNotFoundForNonOwner(t *testing.T) {
	svc, _, _, s := newFolderEnv(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner@b.com")
	intruder := seedUser(t, s, "intruder@b.com")

	folder, err := svc.Create(ctx, owner.ID, "Private", "", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Get(ctx, intruder.ID, folder.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(non-owner) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesIndexBlobsAndRecords(t *testing.T) {
	svc, objects, index, s := newFolderEnv(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")
	folder := seedFolder(t, s, user.ID, "Docs")

	var pdfIDs []string
	for i := 0; i < 2; i++ {
		blob := fmt.Sprintf("blob-%d.pdf", i)
		objects.blobs[blob] = []byte("pdf")
		pdf := &models.PDF{
			UserID:   user.ID,
			FolderID: folder.ID,
			FileName: blob,
			URL:      "http://storage.local/bucket/" + blob,
			Status:   models.StatusInQueue,
		}
		if err := s.CreatePDF(ctx, pdf); err != nil {
			t.Fatalf("CreatePDF() error = %v", err)
		}
		pdfIDs = append(pdfIDs, fmt.Sprintf("%d", pdf.ID))
	}

	if err := svc.Delete(ctx, user.ID, folder.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// One batched index delete covering every PDF.
	if len(index.deletedBatches) != 1 {
		t.Fatalf("index batch deletes = %d, want 1", len(index.deletedBatches))
	}
	if got := index.deletedBatches[0]; len(got) != 2 || got[0] != pdfIDs[0] || got[1] != pdfIDs[1] {
		t.Errorf("batch delete IDs = %v, want %v", got, pdfIDs)
	}

	if len(objects.deletes) != 2 {
		t.Errorf("blob deletes = %d, want 2", len(objects.deletes))
	}

	if _, err := s.GetFolderByID(ctx, folder.ID); err == nil {
		t.Error("folder row still present after Delete()")
	}
	pdfs, err := s.ListPDFsByFolder(ctx, folder.ID)
	if err != nil {
		t.Fatalf("ListPDFsByFolder() error = %v", err)
	}
	if len(pdfs) != 0 {
		t.Errorf("pdf rows remaining = %d, want 0", len(pdfs))
	}
}

func TestDeleteToleratesBlobFailures(t *testing.T) {
	svc, objects, _, s := newFolderEnv(t)
	ctx := context.Background()
	user := seedUser(t, s, "a@b.com")
	folder := seedFolder(t, s, user.ID, "Docs")

	pdf := &models.PDF{
		UserID:   user.ID,
		FolderID: folder.ID,
		FileName: "f.pdf",
		URL:      "http://storage.local/bucket/f.pdf",
		Status:   models.StatusInQueue,
	}
	if err := s.CreatePDF(ctx, pdf); err != nil {
		t.Fatalf("CreatePDF() error = %v", err)
	}
	objects.failDelete = true

	if err := svc.Delete(ctx, user.ID, folder.ID); err != nil {
		t.Fatalf("Delete() with failing blob store error = %v, want nil", err)
	}
	if _, err := s.GetFolderByID(ctx, folder.ID); err == nil {
		t.Error("folder row still present after Delete()")
	}
}

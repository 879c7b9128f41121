package storage

import "testing"

func TestBlobNameFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"http://localhost:9000/pdfs/1700000000000_report.pdf", "1700000000000_report.pdf"},
		{"https://minio.internal/pdfs/1700000000000_annual%20report.pdf", "1700000000000_annual report.pdf"},
		{"http://localhost:9000/pdfs/nested/1_a.pdf", "1_a.pdf"},
	}
	for _, tc := range cases {
		got, err := BlobNameFromURL(tc.url)
		if err != nil {
			t.Errorf("BlobNameFromURL(%q) error = %v", tc.url, err)
			continue
		}
		if got != tc.want {
			t.Errorf("BlobNameFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestBlobNameFromURLRejectsEmptyObject(t *testing.T) {
	if _, err := BlobNameFromURL("http://localhost:9000/pdfs/"); err == nil {
		t.Fatal("expected an error for a URL with no object segment")
	}
}

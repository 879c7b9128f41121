package models

// IngestionJob is the unit of work handed to the embedding worker after an
// upload: fetch the blob, chunk it, embed the chunks and index them.
type IngestionJob struct {
	JobID    string `json:"jobId"`
	PDFID    uint   `json:"pdfId"`
	UserID   uint   `json:"userId"`
	URL      string `json:"url"`
	BlobName string `json:"blobName"`
}

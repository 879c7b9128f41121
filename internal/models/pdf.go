package models

// PDFStatus tracks a document through the ingestion pipeline. Only INQUEUE is
// assigned here; the embedding worker owns the remaining transitions.
type PDFStatus string

const (
	StatusInQueue    PDFStatus = "INQUEUE"
	StatusProcessing PDFStatus = "PROCESSING"
	StatusProcessed  PDFStatus = "PROCESSED"
	StatusErrored    PDFStatus = "ERRORED"
)

// PDF is the record of an uploaded document. UploadedAt is epoch seconds.
// TotalPages starts at zero and is filled in by the embedding worker.
type PDF struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	FolderID   uint      `gorm:"index;not null" json:"folderId"`
	FileName   string    `gorm:"not null;size:512" json:"fileName"`
	URL        string    `gorm:"not null;size:1024" json:"url"`
	Status     PDFStatus `gorm:"type:varchar(20);not null" json:"status"`
	TotalPages int       `gorm:"not null;default:0" json:"totalPages"`
	UploadedAt int64     `json:"uploadedAt"`
}

func (PDF) TableName() string {
	return "pdfs"
}

// PDFMeta is the metadata projection returned inside a folder detail view.
type PDFMeta struct {
	ID         uint      `json:"id"`
	FileName   string    `json:"fileName"`
	URL        string    `json:"url"`
	Status     PDFStatus `json:"status"`
	UploadedAt int64     `json:"uploadedAt"`
	TotalPages int       `json:"totalPages"`
}

package models

// Folder is a user-owned named collection of PDFs.
// CreatedAt is stored as epoch seconds to match the wire format.
type Folder struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Name        string `gorm:"not null;size:255" json:"name"`
	Description string `gorm:"size:1024" json:"description"`
	Color       string `gorm:"size:32" json:"color"`
	CreatedAt   int64  `json:"createdAt"`

	PDFs []PDF `gorm:"foreignKey:FolderID" json:"-"`
}

func (Folder) TableName() string {
	return "folders"
}

// FolderSummary is the list-view projection of a folder, annotated with the
// number of PDFs it contains.
type FolderSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
	Color       string `json:"color"`
	PDFNum      int64  `json:"pdfNum"`
}

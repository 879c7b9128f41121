package models

// User represents an account in the system. The password column stores the
// bcrypt hash and is never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Name     string `gorm:"not null;size:255" json:"name"`
	Password string `gorm:"not null;size:255" json:"-"`
	Avatar   string `gorm:"size:1024" json:"avatar"`

	Folders []Folder `gorm:"foreignKey:UserID" json:"-"`
	PDFs    []PDF    `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

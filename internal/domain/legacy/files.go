package legacy

// File is an already-hosted upload row; the pipeline only carries its URL.
type File struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name" json:"name"`
	URL  string `gorm:"column:url" json:"url"`
}

func (File) TableName() string { return "files" }

// FileMorph is the polymorphic join between files and any content row.
type FileMorph struct {
	FileID      int    `gorm:"column:file_id" json:"file_id"`
	RelatedID   int    `gorm:"column:related_id" json:"related_id"`
	RelatedType string `gorm:"column:related_type" json:"related_type"`
	Field       string `gorm:"column:field" json:"field"`
	Order       int    `gorm:"column:ord" json:"ord"`
}

func (FileMorph) TableName() string { return "files_related_morphs" }

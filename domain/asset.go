package domain

// Asset is a stored binary file plus its metadata, embedded by value in the
// owning entity. Field names match the legacy collections.
type Asset struct {
	File     string `bson:"file" json:"file"`
	FileName string `bson:"fileName" json:"fileName"`
	FileType string `bson:"fileType" json:"fileType"`
	FileSize int64  `bson:"fileSize" json:"fileSize"`
}

func (a Asset) IsZero() bool {
	return a.File == "" && a.FileName == ""
}

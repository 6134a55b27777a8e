package model

// FileType is the coarse document kind passed to the resume parser.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeText FileType = "text"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DetectFileType maps an upload MIME type to a FileType.
func DetectFileType(mimeType string) FileType {
	switch mimeType {
	case mimePDF:
		return FileTypePDF
	case mimeDOCX:
		return FileTypeDOCX
	default:
		return FileTypeText
	}
}

// UploadedFile describes a resume already stored on local disk.
type UploadedFile struct {
	Path     string
	Filename string
	MimeType string
}

// Experience is a single job entry extracted from a resume.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry extracted from a resume.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Project is a portfolio project listed in a resume.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// ParsedResume holds the information returned by the resume parser.
type ParsedResume struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Summary    string       `json:"summary"`
	Projects   []Project    `json:"projects"`
}

// ResumeUpload is the outcome of a resume upload.
type ResumeUpload struct {
	Success       bool          `json:"success"`
	Filename      string        `json:"filename"`
	Message       string        `json:"message"`
	ExtractedInfo *ParsedResume `json:"extractedInfo"`
}

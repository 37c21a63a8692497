package domain

// MediaKind represents the transport-level kind of an uploaded file
type MediaKind string

const (
	MediaKindVideo    MediaKind = "video"
	MediaKindDocument MediaKind = "document"
)

// FileRecord represents one uploaded file inside a sequence session.
// Episode and Quality are derived from the filename and caption once,
// at construction time, and never recomputed.
type FileRecord struct {
	FileID   string
	Filename string
	Caption  string
	Kind     MediaKind
	Episode  *int
	Quality  *int
}

// NewFileRecord builds a record and derives its episode/quality metadata
func NewFileRecord(fileID, filename, caption string, kind MediaKind) FileRecord {
	return FileRecord{
		FileID:   fileID,
		Filename: filename,
		Caption:  caption,
		Kind:     kind,
		Episode:  ExtractEpisode(filename, caption),
		Quality:  ExtractQuality(filename, caption),
	}
}

// Parsed reports whether both episode and quality could be derived
func (f FileRecord) Parsed() bool {
	return f.Episode != nil && f.Quality != nil
}

// DisplayName is the name shown to the user in error messages:
// the caption when present, the filename otherwise
func (f FileRecord) DisplayName() string {
	if f.Caption != "" {
		return f.Caption
	}
	return f.Filename
}

package labfolder

import (
	"fmt"
	"strings"
)

// RecordKind names one of the record types the API exposes as a collection.
// The set is closed; operations consult the capability tables below instead
// of inspecting concrete types.
type RecordKind string

const (
	KindFolder  RecordKind = "folder"
	KindProject RecordKind = "project"
	KindEntry   RecordKind = "entry"
)

func (k RecordKind) String() string {
	return string(k)
}

// ParseKind converts a string such as "folder" to its RecordKind.
func ParseKind(s string) (RecordKind, error) {
	switch k := RecordKind(strings.ToLower(s)); k {
	case KindFolder, KindProject, KindEntry:
		return k, nil
	}
	return "", fmt.Errorf("labfolder: unknown record kind %q", s)
}

// collection returns the API collection path segment for the kind.
func (k RecordKind) collection() string {
	if k == KindEntry {
		return "entries"
	}
	return string(k) + "s"
}

// titled returns the kind with its first letter upper-cased, the form used
// in export filenames and display strings.
func (k RecordKind) titled() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Capability tables for the operations that only some kinds support.
// Checking locally keeps misuse from ever reaching the wire.
var (
	ownerTransferable = map[RecordKind]bool{
		KindFolder:  true,
		KindProject: true,
	}
	pdfExportable = map[RecordKind]bool{
		KindProject: true,
		KindEntry:   true,
	}
)

// Record is implemented by Folder, Project, and Entry. The interface is
// sealed to those three types.
type Record interface {
	Kind() RecordKind
	attrs() RecordAttrs
}

var (
	_ Record = Folder{}
	_ Record = Project{}
	_ Record = Entry{}
)

// NewRecord returns a minimal record of the given kind carrying just an id.
// That is enough for the operations that address records by id, SetOwner and
// ExportPDF, when the full record was never listed.
func NewRecord(kind RecordKind, id string) (Record, error) {
	attrs := RecordAttrs{ID: id}
	switch kind {
	case KindFolder:
		return Folder{RecordAttrs: attrs}, nil
	case KindProject:
		return Project{RecordAttrs: attrs}, nil
	case KindEntry:
		return Entry{RecordAttrs: attrs}, nil
	}
	return nil, fmt.Errorf("labfolder: unknown record kind %q", kind)
}

// RecordAttrs holds the fields shared by all record kinds.
type RecordAttrs struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Hidden       bool      `json:"hidden"`
	CreationDate Timestamp `json:"creation_date"`
	VersionDate  Timestamp `json:"version_date"`
}

func recordString(k RecordKind, a RecordAttrs) string {
	return fmt.Sprintf("%s %s - %s", k.titled(), a.ID, a.Title)
}

// Folder is a folder in a labfolder notebook hierarchy.
type Folder struct {
	RecordAttrs
	OwnerID        string `json:"owner_id"`
	GroupID        string `json:"group_id"`
	ParentFolderID string `json:"parent_folder_id"`
	FolderID       string `json:"folder_id"`
}

func (f Folder) Kind() RecordKind   { return KindFolder }
func (f Folder) attrs() RecordAttrs { return f.RecordAttrs }
func (f Folder) String() string     { return recordString(KindFolder, f.RecordAttrs) }

// Project is a notebook project. Entries live inside projects.
type Project struct {
	RecordAttrs
	OwnerID  string `json:"owner_id"`
	GroupID  string `json:"group_id"`
	FolderID string `json:"folder_id"`
}

func (p Project) Kind() RecordKind   { return KindProject }
func (p Project) attrs() RecordAttrs { return p.RecordAttrs }
func (p Project) String() string     { return recordString(KindProject, p.RecordAttrs) }

// Entry is a single notebook entry within a project.
type Entry struct {
	RecordAttrs
	AuthorID    string `json:"author_id"`
	ProjectID   string `json:"project_id"`
	VersionID   string `json:"version_id"`
	EntryNumber int    `json:"entry_number"`
	Editable    bool   `json:"editable"`
}

func (e Entry) Kind() RecordKind   { return KindEntry }
func (e Entry) attrs() RecordAttrs { return e.RecordAttrs }
func (e Entry) String() string     { return recordString(KindEntry, e.RecordAttrs) }

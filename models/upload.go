package models

import "time"

// UploadEntry is one journal entry created by the user: a text note with an
// optional photo and an optional voice clip. The entry itself holds metadata
// only. Binary payloads live as side-car blob files keyed by ID and are
// never embedded in the serialized record.
type UploadEntry struct {
	// ID is the unique identifier of the entry. It also keys the entry's
	// blob files on disk.
	ID string `json:"id"`

	// Note is the free-form text of the entry. May be empty when the entry
	// carries an image or a voice clip instead.
	Note string `json:"note"`

	// Timestamp is the creation time of the entry.
	Timestamp time.Time `json:"timestamp"`

	// HasImage reports whether an image blob was stored for this entry.
	// A missing blob file on load flips this back to false.
	HasImage bool `json:"has_image"`

	// HasVoice reports whether a voice clip blob was stored for this entry.
	// Handled symmetrically to HasImage.
	HasVoice bool `json:"has_voice"`
}

// UploadDraft is the user-supplied material for a new entry before it is
// persisted. At least one of the three parts must be non-empty; the service
// layer enforces this, not the stored entity.
type UploadDraft struct {
	Note  string
	Image []byte
	Voice []byte
}

// Empty reports whether the draft carries no note, image, or voice data.
func (d UploadDraft) Empty() bool {
	return d.Note == "" && len(d.Image) == 0 && len(d.Voice) == 0
}

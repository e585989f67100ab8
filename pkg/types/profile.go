// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Contacts holds the first email address and phone number found in a
// document. Absent values are empty strings.
type Contacts struct {
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// CandidateProfile is the structured record extracted from one document.
// A profile is either a successful extraction or a failure: when Error is
// set, every other field except FileName is empty.
type CandidateProfile struct {
	// FileName is the source document's base name.
	FileName string `json:"file_name" yaml:"file_name"`

	// Name is the heuristically guessed candidate name, empty when no line
	// qualified.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Contacts Contacts `json:"contacts,omitzero" yaml:"contacts,omitempty"`

	// YearsExperience is the largest "N years" figure in the text, nil when
	// the text mentions none.
	YearsExperience *float64 `json:"years_experience,omitempty" yaml:"years_experience,omitempty"`

	// Skills lists the vocabulary phrases found, sorted and deduplicated.
	Skills []string `json:"skills,omitempty" yaml:"skills,omitempty"`

	// RawTextExcerpt is the leading part of the normalized text, kept as an
	// audit trail and as similarity-matching material.
	RawTextExcerpt string `json:"raw_text_excerpt,omitempty" yaml:"raw_text_excerpt,omitempty"`

	// Error describes why extraction failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the profile records an extraction failure.
func (p CandidateProfile) Failed() bool {
	return p.Error != ""
}

// ErrorProfile returns the failure form of a profile for fileName.
func ErrorProfile(fileName string, err error) CandidateProfile {
	return CandidateProfile{FileName: fileName, Error: err.Error()}
}

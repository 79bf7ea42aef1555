package aip

import (
	"fmt"
)

// UnsupportedVersionError means the SIP declared a profile version this
// service has no mapping for. Fatal for the message; redelivery won't help.
type UnsupportedVersionError struct {
	Version string
	Profile string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported SIP version %q (profile %q)", e.Version, e.Profile)
}

// UnsupportedProfileError means the version is known but the profile is not.
type UnsupportedProfileError struct {
	Version string
	Profile string
}

func (e *UnsupportedProfileError) Error() string {
	return fmt.Sprintf("unsupported SIP profile %q for version %q", e.Profile, e.Version)
}

// MissingTranslationError means a required multilingual field has no value
// in the resolution language.
type MissingTranslationError struct {
	Lang string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("no translation with language tag %q", e.Lang)
}

// MergeConflictError indicates two mapping fragments defined the same
// non-mergeable key. This is a mapping-module authoring bug, never expected
// in correct operation.
type MergeConflictError struct {
	Key string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge conflict on key %q", e.Key)
}

// UnhandledVariantError means the SIP graph contained a variant no mapping
// rule covers. Failing loudly beats silently dropping metadata.
type UnhandledVariantError struct {
	Axis    string
	Variant string
}

func (e *UnhandledVariantError) Error() string {
	return fmt.Sprintf("no mapping for %s variant %q", e.Axis, e.Variant)
}

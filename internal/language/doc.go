// Package language provides language code normalization for stream tags.
//
// Matroska subtitle streams carry ISO 639-2 tags with historical alternate
// spellings ("fre" vs "fra"). All conversions between those tags, the
// two-letter qualifiers used in output filenames, and display names are
// consolidated here.
package language

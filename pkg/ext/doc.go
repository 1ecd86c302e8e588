// Package ext holds the pieces shared by the extkit utility packages: the
// error taxonomy (ErrInvalidArgument, ErrTypeMismatch, ErrNilReference and
// their typed wrappers) and small reflection helpers.
//
// The utilities themselves live in sub-packages:
// - timex: relative-time phrases and calendar predicates for time.Time
// - seq: counting, de-duplication, shuffling and bounded traversal of iter.Seq
// - text: markup stripping, display truncation and digit extraction
// - enum: explicit enumeration registration and list/dictionary conversion
package ext

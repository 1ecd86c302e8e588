// Package text provides string transforms for display and input cleanup.
//
// - StripMarkup (alias StripHTML, StripXML): drop every <...> tag
// - ReduceForDisplay: cut to a display length, optionally ending in a suffix
// - OnlyDigits: keep decimal digits only (card numbers, phone numbers)
// - IsNullOrEmpty, ToStringOrDefault, FormatOrDefault: nil-aware helpers
// - Chain: fluent composition of the above that stops at the first error
//
// Lengths are measured in runes, not bytes.
package text

// Package tui implements the interactive extraction picker.
//
// It lists every extractable anonymous-function line in a source,
// fuzzy-filters the list as the user types, previews the edit the
// engine would make for the selected line, and applies edits in place
// before saving the result.
package tui

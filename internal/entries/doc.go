// Package entries turns a loaded configuration into the display entries shown
// by a picker.
//
// Each entry is the mapping key padded to the width of the longest key, a tab,
// and the mapping value. Format wraps that text in Pango markup carrying the
// configured foreground color and size; the plain text is kept alongside for
// pickers that style it themselves.
//
// Entries are returned in the configuration's iteration order and each one
// records its position, so a picker's returned index maps straight back to a
// mapping value.
package entries

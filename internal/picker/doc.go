// Package picker presents display entries to the user and reports which one
// was chosen.
//
// Two implementations are provided:
//
//   - Rofi runs the rofi program in dmenu mode with Pango markup rows and
//     reads the chosen index from its output.
//   - Terminal shows a filterable Bubble Tea list in the current terminal.
//
// Both return the zero-based index of the chosen entry, or ErrNoSelection
// when the user dismisses the menu. Any other failure is an *Error.
package picker

// Package selector runs the emoti pick flow:
//
//	resolve path → load config → format entries → present → commit → hold
//
// Each stage takes the previous stage's result; the first failure stops the
// flow and is returned as a *StageError naming the stage. A cancelled picker
// ends the flow with OutcomeCancelled and leaves the clipboard untouched.
//
// The hold stage keeps the process alive after the clipboard write because on
// some desktops (X11 in particular) the clipboard contents are served by the
// process that set them.
package selector

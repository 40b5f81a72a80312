// Package output prints dotinstall's terminal messages.
//
// A Printer writes semantic lines (headers, successes, warnings), colours
// unified diffs and renders markdown through glamour. Styling comes from the
// styles registry and is dropped entirely in text format, which is chosen
// automatically when NO_COLOR is set, output is not a terminal, or the
// terminal has no colour support.
package output

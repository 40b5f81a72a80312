// Package fencing locates delimited ("fenced") regions inside raw text.
//
// A Fence is a pair of regular expressions marking the start and the end of
// a maintained region inside an otherwise freeform file, for example:
//
//	### KEYBINDINGS ###
//	bindkey -v
//	### KEYBINDINGS ###
//
// When both patterns are identical the fence is symmetric and markers are
// paired by parity: the 1st, 3rd, 5th... occurrences open a block and the
// 2nd, 4th, 6th... close it. Asymmetric fences pair the n-th start with the
// n-th end.
//
// Delimiters are treated as lines. Each delimiter owns the single line
// terminator that directly follows its match, so a block's Content starts on
// the line after the start marker and stops right before the end marker,
// while a block's Text runs from the start marker through the end marker's
// line terminator. The package never interprets the text between markers.
package fencing

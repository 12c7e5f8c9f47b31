// Package cli implements the cb command-line interface.
//
// The root command copies one named character:
//
//	cb <name>        copy the character and print it
//	cb list          show every name cb understands
//	cb pick          choose a character interactively
//	cb doctor        diagnose clipboard access
//	cb init          write a default config file
//
// Stdout carries only the character (or the listing a subcommand was asked
// for). Warnings, errors and usage go to stderr, so `cb minus | pbcopy`
// style pipelines see exactly one character and a newline.
//
// Clipboard delivery never changes the exit status. Only input and config
// errors exit non-zero.
package cli

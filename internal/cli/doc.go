// Package cli implements the primepath command line.
//
// Usage:
//
//	primepath [flags] [FILE]
//
// Arguments:
//
//	FILE  pyramid file, one row per line; omit to be prompted on stdin.
//
// Flags:
//
//	-c, --config      YAML configuration file (see internal/config)
//	    --log-level   debug | info | warn | error   (default info)
//	    --log-format  text | json                   (default text)
//	    --policy      strict | fallback             (default strict)
//	    --show-path   print the cells of the winning path
//
// Exit codes: 0 solved (including "does not exist"), 1 input file could
// not be opened, 2 bad flags, configuration or pyramid data.
package cli

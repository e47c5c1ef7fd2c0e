// Package cssma parses utility class strings into categorized style
// documents and emits them as CSS or as design-surface node properties. It
// also runs the other way, deriving utility classes from node properties.
//
// # Compiling
//
// Build one Engine per configuration and share it:
//
//	eng, err := cssma.New(cssma.DefaultConfig())
//	res := eng.Compile("flex flex-col items-center gap-4 md:hover:rounded-lg")
//	css, err := eng.CSS(res)
//
// Classes are applied in source order and the last class wins per style
// key, so "p-4 pt-2" keeps the right, bottom and left padding of p-4.
// Classes no parser accepts are skipped and listed in Result.Diagnostics.
//
// # Properties and reverse emission
//
//	props := eng.Properties(res, cssma.FrameNode)
//	classes := eng.Reverse(props, cssma.FrameNode)
//
// Reverse emission prefers preset entries (shadow-lg, rounded-md,
// bg-blue-500) and falls back to bracket values (bg-[#112233], p-[13.5px]).
// It is lossy: transitions, animations and variants are not recovered.
//
// # Scanning and linting
//
// Generate scans template files for class attributes and compiles every
// class found into one stylesheet. Lint reports unrecognized classes,
// non-canonical spellings and classes overridden later in the same
// attribute, in golangci-lint format.
package cssma

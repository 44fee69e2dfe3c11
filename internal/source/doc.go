// Package source discovers Markdown documents under a root directory and
// reads them as text.
//
// Discovery and reading go through an fs.FS, so the rest of the pipeline can
// be exercised with testing/fstest instead of a real directory tree.
// Every failure here is fatal for a run; callers receive sentinel errors
// wrapped with the offending path.
package source

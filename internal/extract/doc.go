// Package extract finds "as of <Month> <Year>" freshness annotations in text.
//
// The Extractor scans a document once, left to right, and reports each
// annotation together with the 1-based line its last character sits on.
// Phrases whose month word is not a month name are skipped, so prose such
// as "as of version 2021" never produces an annotation or an error.
package extract

// Package papersum recovers the structure of academic papers from the flat
// text produced by PDF conversion. It locates the title, authors, abstract,
// keywords and the main body sections with ordered heuristic passes, ranks
// the most frequent topic words, and scores candidate topics against a text
// by TF-IDF cosine similarity.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., pdf/, yaml/, http/).
package papersum

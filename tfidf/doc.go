// Package tfidf turns a tidy table of per-document term counts into TF-IDF
// weights and pivots the retained rows into a document × term matrix.
//
// Weighting (per row):
//
//	tf     = 1 + log10(n)        if sublinear and n > 0
//	       = 0                   if sublinear and n == 0
//	       = n / Σn(document)    otherwise (0 when the document total is 0)
//	idf    = log10(D / df(term)) with D distinct documents, df counted before filtering
//	tfidf  = tf · idf
//
// Filtering drops every row whose term occurs in fewer than min_docs
// documents. It runs after weighting, so idf always sees the full table.
//
// Pivot keeps every input document as a row (documents that lost all their
// terms become all-zero rows) and records which (document, term) pairs were
// present in a support mask so that downstream consumers can tell a retained
// zero weight from an absent pair.
//
// Errors:
//
//	ErrNegativeCount  - a count below zero.
//	ErrEmptyLabel     - an empty document or term label.
//	ErrDuplicatePair  - the same (document, term) pair twice in Pivot input.
package tfidf

// Package engine implements the content-extraction algorithm: a
// multi-pass DOM traversal that normalizes markup, scores candidate
// subtrees by readability heuristics, selects and promotes a top
// candidate, fuses sibling content, and prunes the result into a
// single article record.
package engine

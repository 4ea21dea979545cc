// Package pagebar computes what a numbered page selector shows for a dataset
// split into a given number of pages.
//
// Overview
//
// A page selector has to stay the same width whether the dataset has 12 pages
// or 12 million. pagebar keeps it bounded by collapsing distant pages into
// overflow groups:
//   - ComputeRange: decides which pages are shown on their own and which are
//     collapsed into a group, for a total page count and the current page.
//   - ComputeWindow: given a fixed row size and a scroll viewport, decides
//     which rows of a (possibly huge) group list must actually be rendered.
//   - Controller: holds the current page, applies prev/next/jump navigation
//     and notifies an observer whenever the page changes.
//
// Key concepts
//   - Item: a single page or a group of pages. Groups built by ComputeRange
//     are lazy spans, they never hold their page numbers in memory.
//   - Range: the ordered items of one rendering. Flattening a range always
//     yields 1..total exactly once each.
//   - PageQuery: applies the current page of a numbered selector to a GORM
//     query as LIMIT/OFFSET.
//
// The package knows nothing about rendering. Hosts call into it and draw the
// result however they like, see the examples directory.
package pagebar

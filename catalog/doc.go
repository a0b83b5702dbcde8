// Package catalog is the listing engine behind the VR room and home pages.
//
// It works on an immutable snapshot of property records handed over by a
// loader. Filtering, facet extraction, view-mode transitions, map viewport
// fitting and card/marker projection are pure functions of that snapshot and
// the current State; nothing here blocks, fails or mutates its input.
package catalog

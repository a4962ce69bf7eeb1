// Package feature holds the homepage feature records and the ordered list that
// the grid renderer consumes.
//
// A Record is an immutable value: title, icon reference, and a sanitised rich
// text description. A List is an immutable ordered sequence of records where
// insertion order is display order. Lists are built once, either from the
// reference instance returned by Reference or from a JSON/YAML document read
// through LoadFS, and are never mutated afterwards. Operations that look like
// mutations (Swap, Append) return new lists.
package feature

// Package listview provides a scrolling, selectable list for Bubble Tea.
//
// Only the rows that fit the viewport are rendered, so pages of any size stay
// cheap to draw. Items may span several terminal lines; the viewport is
// measured in items, derived from the height and the per-item line count.
package listview

// Package region defines the primitive data model shared by the regionmap
// engine: region identifiers, per-region count state, and named groups.
//
// A region is an atomic addressable unit with a stable string id and a single
// non-negative integer count. A count of zero means unselected; any positive
// count means selected/active. This one representation carries selection
// state across every interaction mode.
//
// A ValueMap maps region ids to counts. Missing ids mean count zero, and the
// engine never stores zero counts explicitly: every function that produces a
// ValueMap returns a normalized map containing only positive counts.
//
// Groups are named, ordered sets of region ids declared by the map
// definition. Declaration order is significant: grouped style overrides and
// group-qualified indexed aesthetics resolve "first declared wins", so
// Groups is a slice, never an unordered map.
package region

// Package flexbox implements a Yoga-compatible flexbox layout engine:
// given a tree of styled nodes, it computes each node's rectangle
// within a root content area following the CSS Flexible Box Layout
// algorithm, with a small set of documented intentional deviations from
// Yoga (see Config.StrictYogaParity).
//
// The engine is single-threaded and synchronous: CalculateLayout runs
// to completion with no I/O. It is built for terminal UI toolkits and
// other renderers that want a layout primitive without a native or
// WebAssembly dependency.
package flexbox

// Package pkg provides the core libraries for regionmap interaction and
// aesthetic resolution.
//
// # Overview
//
// Regionmap turns clicks on named regions into state, and state into fully
// concrete per-region rendering instructions. The pkg directory is organized
// into four main areas:
//
//  1. [region], [mode], [style], [layers] - The pure engine (value maps,
//     mode state machine, layered style resolution, tier assignment)
//  2. [mapdef] - Map definition loading and value serialization
//  3. [pipeline], [render/svgmap] - Orchestration and SVG output
//  4. [session], [cache], [host] - Stateful hosting over HTTP
//
// # Architecture
//
// The typical data flow through regionmap:
//
//	TOML map definition
//	         ↓
//	    [mapdef] package (parse + validate)
//	         ↓
//	    [mode] package (click → value map)
//	         ↓
//	    [style] + [layers] packages (value map → per-region style and tier)
//	         ↓
//	    [render/svgmap] package (SVG output)
//
// The engine packages are pure: the same definition and value map always
// resolve to the same output, which is what makes host-side render caching
// safe.
package pkg

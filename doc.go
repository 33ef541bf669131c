// Package statewalk generates test paths from a finite-state machine model.
//
// Given a Machine collaborator, the package explores the reachable state
// graph and produces Paths: ordered walks of (event, resulting-state)
// segments starting at the machine's initial state. Each generated path
// exercises one behaviorally distinct route through the model and can be
// replayed against a live machine with per-transition callbacks.
//
// Generation is lazy, deterministic, depth-first and bounded: a revisit cap
// on similar segments guards against cycles and a maximum path length caps
// growth regardless of filters. A post-processing pass collapses the
// finished path set to its maximal members, dropping any path whose
// description occurs verbatim inside a longer path's description.
package statewalk

// Package sentiment implements the sentiment scoring backend.
//
// The Analyzer is a pure function of its input text: no caching, no failure
// path. It fulfils the domain.Scorer contract with a VADER lexicon scorer.
package sentiment

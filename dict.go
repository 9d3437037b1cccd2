package main

import "sort"

// Dictionary maps word names to their bodies.
//
// Lookups are late-bound: a body refers to other words only by name, so
// redefining a word changes the behavior of every word that calls it.
type Dictionary struct {
	words map[string]*dictEntry
}

type dictEntry struct {
	body Body

	// conditional structure is resolved on first execution, and then kept
	// for as long as this entry's body is current
	resolved bool
	cond     condMap
	condErr  error
}

// Define sets the body of the named word, replacing any prior definition
// wholesale. The given body is copied.
func (dict *Dictionary) Define(name string, body Body) {
	if dict.words == nil {
		dict.words = make(map[string]*dictEntry)
	}
	dict.words[name] = &dictEntry{body: append(make(Body, 0, len(body)), body...)}
}

// Has reports whether the named word is defined.
func (dict *Dictionary) Has(name string) bool {
	_, defined := dict.words[name]
	return defined
}

// Lookup returns the current body of the named word.
func (dict *Dictionary) Lookup(name string) (Body, bool) {
	if ent, defined := dict.words[name]; defined {
		return ent.body, true
	}
	return nil, false
}

// Len returns the number of defined words.
func (dict *Dictionary) Len() int { return len(dict.words) }

// Names returns all defined word names in sorted order.
func (dict *Dictionary) Names() []string {
	names := make([]string, 0, len(dict.words))
	for name := range dict.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve returns the named word's body along with its conditional map,
// validating the body's structure the first time it is called upon.
func (dict *Dictionary) resolve(name string) (Body, condMap, error) {
	ent, defined := dict.words[name]
	if !defined {
		return nil, condMap{}, faultf(InvalidStructure, Token(name), "undefined word")
	}
	if !ent.resolved {
		ent.cond, ent.condErr = resolveConditionals(ent.body)
		ent.resolved = true
	}
	return ent.body, ent.cond, ent.condErr
}

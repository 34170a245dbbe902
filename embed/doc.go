// Package embed recognizes embed snippets copied from external sites and
// turns them into one-line directives of the form !provider[id].
package embed

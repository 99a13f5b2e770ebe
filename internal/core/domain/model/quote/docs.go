// Package quote holds the normalized rate quote returned to customers regardless
// of which provider produced it, the ordered List the pipeline filters, and the
// Source enum labelling the provider.
package quote

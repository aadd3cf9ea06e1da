// Package condense implements C4: a single size-floor filter over the
// flat cluster list hierarchy.Build produced, dropping every branch that
// never grew to minClusterSize members. What's left is the candidate set
// extract.Walk selects from.
package condense

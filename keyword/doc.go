// Package keyword builds the inverted keyword index used for fast
// high-confidence lookup ahead of full corpus scoring.
package keyword

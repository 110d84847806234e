// Package jsonfile implements the storage contracts over plain JSON files
// in a single data directory. Writes are atomic (temp file + rename) and
// keyed stores keep their document order across rewrites.
package jsonfile

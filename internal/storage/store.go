// Package storage provides whole-collection persistence: every collection is
// one JSON document, read and written in full on each access. There is no
// incremental update and no cross-request serialization, so two concurrent
// load-modify-save cycles on the same collection can lose the earlier write
// (last writer wins). This is a known limitation of the store's contract.
package storage

// RecordStore reads and writes a named collection as a single document.
//
// Load decodes the collection into out (a pointer to a slice). A missing
// collection leaves out untouched and returns nil; an undecodable one
// returns *domain.StorageCorruptError. Save replaces the collection and
// returns *domain.StorageWriteError on failure.
type RecordStore interface {
	Load(collection string, out any) error
	Save(collection string, records any) error
}

// Package mmap maps snapshot files read-only into memory.
//
// Decoding walks a snapshot once from front to back, so Open hints the
// kernel for sequential access. The mapped bytes are valid until Close;
// callers must copy anything they keep.
//
//	m, err := mmap.Open("index.scnt")
//	if err != nil { ... }
//	defer m.Close()
//	idx, err := codec.DecodeRank(m.Bytes())
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile, and access hints are ignored.
package mmap

// Package repository offers a generic, ordered, in memory Repository.
//
// MemoryRepository mints uuid ids on Create, keeps the insertion order, merges partial
// updates through a Patch and can be replaced as a whole with seed data via Fill or Import.
// Lookups of unknown ids always return an error wrapping ErrNotFound.
//
// A Repository offers a whole set of methods already out of the box. That might not be enough, though.
// It is possible to overwrite an existing method to change the behaviour as well as extend the Repository
// with new methods. There are examples for both.
//
// All repositories are in memory and their contents are gone when the process ends.
// Sometimes it might be handy to keep a snapshot, so it is possible to use a Store to do so.
// This is NOT intended for production use and only recommended for local demoing of an application.
package repository

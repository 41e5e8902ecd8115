// Package filestore keeps session-medium keys as individual files in one
// directory. Each file is replaced atomically (write to temp, rename), so a
// reader sees either the previous value or the new one, never a torn write.
// Writes spanning several keys are not atomic as a group.
package filestore

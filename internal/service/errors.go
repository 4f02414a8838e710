package service

import "errors"

// Sentinel errors shared by the section services. Every rejection leaves the
// record store untouched.
var (
	// ErrPermissionDenied indicates the caller's role lacks edit rights on the
	// acting section.
	ErrPermissionDenied = errors.New("role lacks permission for this section")
	// ErrStudentNotFound indicates the supplied student id resolves to no record.
	ErrStudentNotFound = errors.New("student not found")
)

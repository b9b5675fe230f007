// Package platform provides cross-platform filesystem helpers. On Unix
// systems permission changes use chmod directly; on Windows they are a no-op
// because Unix-style permission bits are not supported there.
package platform

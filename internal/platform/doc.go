// Package platform contains OS integration: validating and opening video
// links in the system browser and locating thumbnail files on disk.
package platform

// Package domain contains the core coordinate model for libcoords.
//
// The domain is host-agnostic: it does not know about flat layouts, YAML,
// or the filesystem. The bridge and infra packages map into/from these types.
package domain

// Package proto implements the binary interchange encoding of date values.
package proto

import "encoding/binary"

var bin = binary.LittleEndian

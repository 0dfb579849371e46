package qc16

import (
	"fmt"
	"runtime"
)

var (
	// Version number
	Version = "0.1.0"
	// SoftwareID identifies the software and platform
	SoftwareID = fmt.Sprintf("%s go-qc16 %s", Version, runtime.GOOS)
	// PackageID adds the architecture to SoftwareID
	PackageID = fmt.Sprintf("%s/%s", SoftwareID, runtime.GOARCH)
)

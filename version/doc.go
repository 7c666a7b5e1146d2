// Package version exposes build-time version information for relaypage.
//
// # Build Integration
//
// Set version information during build with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/relaypage/version.Version=1.2.3 \
//	  -X github.com/ncobase/relaypage/version.Branch=main \
//	  -X github.com/ncobase/relaypage/version.Revision=abc123 \
//	  -X 'github.com/ncobase/relaypage/version.BuiltAt=$(date -u +%FT%TZ)'" \
//	  ./cmd/relaypage
//
// Without ldflags the module version and VCS stamps recorded by the Go
// toolchain are used when available.
//
// # Retrieving Version Info
//
//	info := version.GetVersionInfo()
//	fmt.Println(info.String())
//
//	out, _ := info.JSON()
package version

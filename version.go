package bigint

import "github.com/blang/semver/v4"

// Version of the library. The encoding package embeds the major version in
// every serialized stream and refuses to decode streams produced by a
// different major version.
var Version = semver.MustParse("0.1.0")

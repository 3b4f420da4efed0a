/*
Copyright © 2025 Consensys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package encoding

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/bigint"
)

func genU256() gopter.Gen {
	return gopter.CombineGens(gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64()).
		Map(func(vals []interface{}) bigint.U256 {
			return bigint.U256FromWords([4]bigint.Word{
				vals[0].(uint64), vals[1].(uint64), vals[2].(uint64), vals[3].(uint64),
			})
		})
}

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, mode := range []Mode{Binary, Hex} {
		mode := mode
		properties.Property("serialize then deserialize restores the value", prop.ForAll(
			func(v bigint.U256) bool {
				var buf bytes.Buffer
				if err := Serialize(&buf, &v, mode); err != nil {
					return false
				}
				var got bigint.U256
				if err := Deserialize(&buf, &got); err != nil {
					return false
				}
				return got.Eq(v) == 1
			},
			genU256(),
		))
	}

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestWidthMismatch(t *testing.T) {
	var buf bytes.Buffer
	v := bigint.U256From64(42)
	require.NoError(t, Serialize(&buf, &v, Binary))

	var got bigint.U128
	require.ErrorIs(t, Deserialize(&buf, &got), ErrWidthMismatch)
}

func TestVersionMismatch(t *testing.T) {
	old := bigint.Version
	defer func() { bigint.Version = old }()

	var buf bytes.Buffer
	v := bigint.U256From64(42)
	require.NoError(t, Serialize(&buf, &v, Binary))

	bigint.Version.Major++
	var got bigint.U256
	require.ErrorIs(t, Deserialize(&buf, &got), ErrVersionMismatch)
}

func TestUnknownMode(t *testing.T) {
	var buf bytes.Buffer
	v := bigint.U256From64(42)
	require.Error(t, Serialize(&buf, &v, Mode(99)))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.cbor")

	want, err := bigint.U512FromHex(
		"AAAAAAAABBBBBBBBCCCCCCCCDDDDDDDD00002222444466668888AAAACCCCEEEE" +
			"11113333555577779999BBBBDDDDFFFF0123456789ABCDEF0123456789ABCDEF")
	require.NoError(t, err)

	require.NoError(t, Write(path, &want, Hex))

	bits, err := PeekWidth(path)
	require.NoError(t, err)
	require.Equal(t, 512, bits)

	var got bigint.U512
	require.NoError(t, Read(path, &got))
	require.Equal(t, 1, int(got.Eq(want)))
}

func TestReadMissingFile(t *testing.T) {
	var got bigint.U256
	require.Error(t, Read(filepath.Join(t.TempDir(), "absent"), &got))
}

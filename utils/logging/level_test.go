// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allLevels = []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}

func TestAlignedString(t *testing.T) {
	for _, l := range allLevels {
		as := l.AlignedString()
		require.Len(t, as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			require.Equal(t, s[:alignedStringLen], as)
		default:
			require.Equal(t, s, as[:len(s)])
			require.Equal(t, strings.Repeat(" ", alignedStringLen-len(s)), as[len(s):])
		}
	}
}

func TestToLevel(t *testing.T) {
	for _, l := range allLevels {
		t.Run(l.String(), func(t *testing.T) {
			require := require.New(t)

			parsed, err := ToLevel(strings.ToLower(l.String()))
			require.NoError(err)
			require.Equal(l, parsed)

			b, err := json.Marshal(l)
			require.NoError(err)
			var unmarshalled Level
			require.NoError(json.Unmarshal(b, &unmarshalled))
			require.Equal(l, unmarshalled)
		})
	}

	_, err := ToLevel("loud")
	require.ErrorContains(t, err, "unknown log level")
}

func TestLevelOrdering(t *testing.T) {
	for i := 1; i < len(allLevels); i++ {
		require.True(t, allLevels[i-1] > allLevels[i])
	}
}

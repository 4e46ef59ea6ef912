package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLabels(t *testing.T) {
	require.Empty(t, splitLabels(""))
	require.Empty(t, splitLabels(" , ,"))
	require.Equal(t, []string{"PC 34:1", "TG 52:2"}, splitLabels("PC 34:1, TG 52:2,"))
}

package qrimg_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbdocs/mbdocs-api/internal/infrastructure/qrimg"
)

func TestDataURL(t *testing.T) {
	url, err := qrimg.NewEncoder().DataURL("ST00012|Name=Тест|Sum=1000000")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(url, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	require.NoError(t, err)
	// сигнатура PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

package search

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHitIDs(t *testing.T) {
	ids, err := decodeHitIDs([]byte(`{"hits":[{"id":"3"},{"id":"x"},{"id":"11"}],"query":"red"}`))
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 11}, ids)
}

func TestDecodeHitIDsInvalid(t *testing.T) {
	_, err := decodeHitIDs([]byte(`not json`))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	s := &meiliSearchService{sanitizer: bluemonday.StrictPolicy()}
	assert.Equal(t, "Gryffindor & co", s.cleanText("<b>Gryffindor</b>   &amp; co"))
}

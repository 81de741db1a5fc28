package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	rdfio "github.com/geoknoesis/rdf-go/rdf"
)

func TestFormatForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want rdfio.Format
	}{
		{".ttl", rdfio.FormatTurtle},
		{".TTL", rdfio.FormatTurtle},
		{".nt", rdfio.FormatNTriples},
		{".nq", rdfio.FormatNQuads},
		{".trig", rdfio.FormatTriG},
		{".owl", rdfio.FormatRDFXML},
		{".rdf", rdfio.FormatRDFXML},
		{".jsonld", rdfio.FormatJSONLD},
	}

	for _, tt := range tests {
		got, err := formatForExtension(tt.ext)
		assert.NoError(t, err, tt.ext)
		assert.Equal(t, tt.want, got, tt.ext)
	}
}

func TestFormatForExtension_Unknown(t *testing.T) {
	_, err := formatForExtension(".csv")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	_, err := LoadFile("data.csv")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("missing.ttl")
	assert.True(t, errors.Is(err, ErrLoad))
}

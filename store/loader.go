package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	rdfio "github.com/geoknoesis/rdf-go/rdf"
)

// formatForExtension maps a file extension to a decoder format.
func formatForExtension(ext string) (rdfio.Format, error) {
	switch strings.ToLower(ext) {
	case ".ttl", ".turtle":
		return rdfio.FormatTurtle, nil
	case ".nt":
		return rdfio.FormatNTriples, nil
	case ".nq":
		return rdfio.FormatNQuads, nil
	case ".trig":
		return rdfio.FormatTriG, nil
	case ".rdf", ".owl", ".xml":
		return rdfio.FormatRDFXML, nil
	case ".jsonld":
		return rdfio.FormatJSONLD, nil
	default:
		return rdfio.FormatTurtle, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadFile reads a serialized ontology into a fresh in-memory store. The
// format is chosen from the file extension. Quads carrying a named graph
// are flattened into the single snapshot; quoted-triple terms are skipped.
func LoadFile(path string) (*Memory, error) {
	format, err := formatForExtension(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return m, nil
}

// Decode reads triples from r in the given format into a fresh in-memory
// store.
func Decode(r io.Reader, format rdfio.Format) (*Memory, error) {
	dec, err := rdfio.NewReader(r, format)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	m := NewMemory()
	for {
		quad, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		s, ok := fromTerm(quad.S)
		if !ok {
			continue
		}
		p, ok := fromTerm(quad.P)
		if !ok {
			continue
		}
		o, ok := fromTerm(quad.O)
		if !ok {
			continue
		}
		m.Add(Triple{Subject: s, Predicate: p, Object: o})
	}
	return m, nil
}

// fromTerm converts a decoder term into a store term. Quoted triples
// (RDF-star) have no place in the metric model and report ok=false.
func fromTerm(t rdfio.Term) (Term, bool) {
	switch v := t.(type) {
	case rdfio.IRI:
		return IRI(v.Value), true
	case rdfio.BlankNode:
		return Blank(v.ID), true
	case rdfio.Literal:
		return Literal(v.Lexical), true
	default:
		return Term{}, false
	}
}

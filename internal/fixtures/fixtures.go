// Package fixtures is the built-in mock data store. The records are embedded
// in the binary and decoded once.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
)

//go:embed fixtures.yaml
var embedded []byte

// Document is the on-disk shape of a full record set. The S3 snapshot source
// reads the same shape as JSON.
type Document struct {
	Sites           []domain.Site           `json:"sites" yaml:"sites"`
	Assets          []domain.Asset          `json:"assets" yaml:"assets"`
	Tickets         []domain.Ticket         `json:"tickets" yaml:"tickets"`
	MaintenanceLogs []domain.MaintenanceLog `json:"maintenance_logs" yaml:"maintenance_logs"`
	Users           []domain.User           `json:"users" yaml:"users"`
}

// Decode parses a YAML document. Unknown enum values fail the decode.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &doc, nil
}

// Export writes doc as indented JSON.
func Export(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export fixtures: %w", err)
	}
	return nil
}

// Static serves the embedded fixtures.
type Static struct {
	once sync.Once
	doc  *Document
	err  error
}

func NewStatic() *Static { return &Static{} }

func (s *Static) Document() (*Document, error) {
	s.once.Do(func() {
		s.doc, s.err = Decode(bytes.NewReader(embedded))
	})
	return s.doc, s.err
}

func (s *Static) LoadSites(context.Context) ([]domain.Site, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Sites), nil
}

func (s *Static) LoadAssets(context.Context) ([]domain.Asset, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Assets), nil
}

func (s *Static) LoadTickets(context.Context) ([]domain.Ticket, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Tickets), nil
}

func (s *Static) LoadMaintenanceLogs(context.Context) ([]domain.MaintenanceLog, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.MaintenanceLogs), nil
}

func (s *Static) LoadUsers(context.Context) ([]domain.User, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Users), nil
}

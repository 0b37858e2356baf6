package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

//go:embed data/demo.yaml
var demoData []byte

// document mirrors the on-disk layout of a catalog file.
type document struct {
	Deals              []Deal              `yaml:"deals"`
	DealDetails        []DealDetail        `yaml:"deal_details"`
	Companies          []Company           `yaml:"companies"`
	Contacts           []Contact           `yaml:"contacts"`
	Meetings           []Meeting           `yaml:"meetings"`
	Personas           []Persona           `yaml:"personas"`
	Objections         []Objection         `yaml:"objections"`
	FAQs               []FAQ               `yaml:"faqs"`
	DiscoveryQuestions []DiscoveryQuestion `yaml:"discovery_questions"`
	Signals            []Signal            `yaml:"signals"`
	CustomerProfiles   []CustomerProfile   `yaml:"customer_profiles"`
	Positioning        Positioning         `yaml:"positioning"`
}

// Demo returns the catalog built from the embedded demo data.
func Demo() (*Catalog, error) {
	return Decode(bytes.NewReader(demoData))
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads the catalog at path, or the embedded demo data when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Demo()
	}
	return LoadFile(path)
}

// Decode parses a YAML catalog and indexes every collection.
func Decode(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{Positioning: doc.Positioning}
	var err error

	if c.Deals, err = NewCollection(doc.Deals, func(d Deal) string { return d.ID }); err != nil {
		return nil, fmt.Errorf("deals: %w", err)
	}
	if c.DealDetails, err = NewCollection(doc.DealDetails, func(d DealDetail) string { return d.ID }); err != nil {
		return nil, fmt.Errorf("deal_details: %w", err)
	}
	if c.Companies, err = NewCollection(doc.Companies, func(co Company) string { return co.ID }); err != nil {
		return nil, fmt.Errorf("companies: %w", err)
	}
	if c.Contacts, err = NewCollection(doc.Contacts, func(ct Contact) string { return ct.ID }); err != nil {
		return nil, fmt.Errorf("contacts: %w", err)
	}
	if c.Meetings, err = NewCollection(doc.Meetings, func(m Meeting) string { return m.ID }); err != nil {
		return nil, fmt.Errorf("meetings: %w", err)
	}
	if c.Personas, err = NewCollection(doc.Personas, func(p Persona) string { return p.ID }); err != nil {
		return nil, fmt.Errorf("personas: %w", err)
	}
	if c.Objections, err = NewCollection(doc.Objections, func(o Objection) string { return o.ID }); err != nil {
		return nil, fmt.Errorf("objections: %w", err)
	}
	if c.FAQs, err = NewCollection(doc.FAQs, func(f FAQ) string { return f.ID }); err != nil {
		return nil, fmt.Errorf("faqs: %w", err)
	}
	if c.DiscoveryQuestions, err = NewCollection(doc.DiscoveryQuestions, func(q DiscoveryQuestion) string { return q.ID }); err != nil {
		return nil, fmt.Errorf("discovery_questions: %w", err)
	}
	if c.Signals, err = NewCollection(doc.Signals, func(s Signal) string { return s.ID }); err != nil {
		return nil, fmt.Errorf("signals: %w", err)
	}
	if c.CustomerProfiles, err = NewCollection(doc.CustomerProfiles, func(p CustomerProfile) string { return p.ID }); err != nil {
		return nil, fmt.Errorf("customer_profiles: %w", err)
	}

	return c, nil
}

// Store holds the current catalog and swaps it atomically on reload.
type Store struct {
	path    string
	current atomic.Pointer[Catalog]
}

// NewStore loads the catalog at path (embedded demo data when empty).
func NewStore(path string) (*Store, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.current.Store(c)
	return s, nil
}

// NewStaticStore wraps an already built catalog. Reload is a no-op.
func NewStaticStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Path returns the backing file, empty for embedded data.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous snapshot is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	c, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.current.Store(c)
	return nil
}

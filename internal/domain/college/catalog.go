package college

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"slices"

	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
)

// DefaultName is shown when the document carries no college name.
const DefaultName = "College Chatbot"

// Source fetches the raw college document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Describe() string
}

// Catalog is the read-only view over a loaded college document. It is safe
// for concurrent use because nothing mutates it after construction.
type Catalog struct {
	doc Document
}

// NewCatalog wraps an already decoded document.
func NewCatalog(doc Document) *Catalog {
	return &Catalog{doc: doc}
}

// Parse decodes a college document.
func Parse(data []byte) (*Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, apperrors.Wrap(apperrors.CodeDataInvalid, "college document must be a JSON object", nil)
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDataInvalid, "decode college document", err)
	}
	return NewCatalog(doc), nil
}

// Load fetches and parses the document from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, errors.New("college source is nil")
	}
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Name returns the college display name, falling back to DefaultName.
func (c *Catalog) Name() string {
	if c.doc.Name.Empty() {
		return DefaultName
	}
	return c.doc.Name.String()
}

// RawName returns the name exactly as stored.
func (c *Catalog) RawName() string { return c.doc.Name.String() }

func (c *Catalog) Address() string { return c.doc.Address.String() }

func (c *Catalog) Email() string { return c.doc.Email.String() }

func (c *Catalog) Website() string { return c.doc.Website.String() }

func (c *Catalog) About() string { return c.doc.About.String() }

func (c *Catalog) Phones() []string { return slices.Clone(c.doc.Phone) }

func (c *Catalog) Facilities() []string { return slices.Clone(c.doc.Facilities) }

// DepartmentKeys returns HOD department keys in document order.
func (c *Catalog) DepartmentKeys() []string {
	return slices.Clone(c.doc.HODs.keys)
}

// HOD looks up a department by its exact key.
func (c *Catalog) HOD(key string) (HOD, bool) {
	hod, ok := c.doc.HODs.byKey[key]
	return hod, ok
}

func (c *Catalog) Routes() []Route { return slices.Clone(c.doc.Transport.Routes) }

func (c *Catalog) Drivers() []Driver { return slices.Clone(c.doc.Drivers) }

// Events returns the academic calendar in stored order.
func (c *Catalog) Events() []AcademicEvent { return slices.Clone(c.doc.AcademicCalendar) }

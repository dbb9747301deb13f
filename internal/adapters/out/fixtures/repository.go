// Package fixtures serves the static page content of shippix from a YAML
// document embedded in the binary.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"maps"
	"slices"

	"shippix/internal/core/domain/model/content"
	"shippix/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type document struct {
	Landing   content.Landing                   `yaml:"landing"`
	Help      content.HelpCenter                `yaml:"help"`
	Dashboard content.Dashboard                 `yaml:"dashboard"`
	Admin     content.AdminConsole              `yaml:"admin"`
	Shipments map[string]content.ShipmentSample `yaml:"shipments"`
}

// ContentRepository implements ports.ContentRepository over a decoded document.
// It is read-only and safe for concurrent use.
type ContentRepository struct {
	doc document
}

// NewContentRepository decodes the embedded content.
func NewContentRepository() (*ContentRepository, error) {
	return Load(defaultContent)
}

// Load decodes a content document. Unknown keys are rejected so a typo in a
// fixture fails loudly instead of rendering an empty section.
func Load(data []byte) (*ContentRepository, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return &ContentRepository{doc: doc}, nil
}

func (r *ContentRepository) Landing(context.Context) (content.Landing, error) {
	return r.doc.Landing, nil
}

func (r *ContentRepository) HelpCenter(context.Context) (content.HelpCenter, error) {
	return r.doc.Help, nil
}

func (r *ContentRepository) Dashboard(context.Context) (content.Dashboard, error) {
	return r.doc.Dashboard, nil
}

// AdminConsole returns a copy, so callers may apply review decisions to it.
func (r *ContentRepository) AdminConsole(context.Context) (content.AdminConsole, error) {
	console := r.doc.Admin
	console.Orders = append([]content.AdminOrder(nil), console.Orders...)
	console.RecentOrders = append([]content.AdminOrder(nil), console.RecentOrders...)
	return console, nil
}

func (r *ContentRepository) ShipmentSample(_ context.Context, id string) (content.ShipmentSample, error) {
	sample, ok := r.doc.Shipments[id]
	if !ok {
		return content.ShipmentSample{}, errs.NewObjectNotFoundError("shipmentID", id)
	}
	return sample, nil
}

// ShipmentIDs returns the IDs of the known shipments, sorted.
func (r *ContentRepository) ShipmentIDs() []string {
	return slices.Sorted(maps.Keys(r.doc.Shipments))
}

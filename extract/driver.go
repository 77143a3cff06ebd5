package extract

import (
	"time"

	"github.com/tliron/commonlog"

	"github.com/brandhill/scaloid/descriptor"
)

// Driver runs one extraction pass over the provider's snapshot: every
// non-nested class under the root package, optionally restricted to classes
// assignable to a base type.
type Driver struct {
	// Base, when set, keeps only classes assignable to this qualified name.
	Base string

	provider descriptor.Provider
	builder  *Builder
	log      commonlog.Logger
}

func NewDriver(provider descriptor.Provider, rootNS string) *Driver {
	return &Driver{
		provider: provider,
		builder:  NewBuilder(provider, rootNS),
		log:      commonlog.GetLogger("extract"),
	}
}

// Run builds the qualified-name-to-model mapping for every class under the
// root package. Nested classes are skipped because their enclosing-class
// relationship is not modeled. A class whose types fail to resolve is logged
// and omitted whole; the pass keeps going.
func (d *Driver) Run(rootPackage string) map[string]*ClassModel {
	start := time.Now()
	classes := d.provider.ClassesUnder(rootPackage)
	d.log.Infof("discovered %d classes under %s", len(classes), rootPackage)

	result := make(map[string]*ClassModel)
	properties, listeners, failed := 0, 0, 0
	for _, c := range classes {
		if c.IsNested() {
			continue
		}
		if d.Base != "" && !c.AssignableTo(d.Base) {
			continue
		}

		model, err := d.builder.Build(c)
		if err != nil {
			d.log.Errorf("skipping %s: %v", c.Name, err)
			failed++
			continue
		}
		result[model.QualifiedName()] = model
		properties += len(model.Properties)
		listeners += len(model.Listeners)
	}

	d.log.Noticef("extracted %d classes in %v", len(result), time.Since(start).Round(time.Millisecond))
	d.log.Infof("%d properties", properties)
	d.log.Infof("%d listeners", listeners)
	if failed > 0 {
		d.log.Warningf("%d classes failed to resolve", failed)
	}
	return result
}

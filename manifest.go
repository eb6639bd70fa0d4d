// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrc

import (
	"bytes"
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// ManifestName is the TOML file name a Manifest is conventionally read from.
const ManifestName = "Classgraph.toml"

// Manifest is a parsed class graph: every declared class, its superclasses,
// mixins and filters, and the objects instantiated from it. It plays the
// role class-definition parsing would otherwise play for a demo or test
// harness exercising the resolution core end to end.
type Manifest struct {
	Classes []ClassDef
	Objects []ObjectDef
}

// ClassDef is one class declaration.
type ClassDef struct {
	Name         string
	Superclasses []string
	Mixins       []string
	Filters      []string
	Methods      []string
	Constructor  string
	Destructor   string
}

// ObjectDef is one object instantiation.
type ObjectDef struct {
	Name    string
	Class   string
	Mixins  []string
	Filters []string
	Methods []string
}

type rawManifest struct {
	Classes []rawClassDef  `toml:"classes"`
	Objects []rawObjectDef `toml:"objects"`
}

type rawClassDef struct {
	Name         string   `toml:"name"`
	Superclasses []string `toml:"superclasses,omitempty"`
	Mixins       []string `toml:"mixins,omitempty"`
	Filters      []string `toml:"filters,omitempty"`
	Methods      []string `toml:"methods,omitempty"`
	Constructor  string   `toml:"constructor,omitempty"`
	Destructor   string   `toml:"destructor,omitempty"`
}

type rawObjectDef struct {
	Name    string   `toml:"name"`
	Class   string   `toml:"class"`
	Mixins  []string `toml:"mixins,omitempty"`
	Filters []string `toml:"filters,omitempty"`
	Methods []string `toml:"methods,omitempty"`
}

// ReadManifest parses a class graph from TOML.
func ReadManifest(r io.Reader) (*Manifest, error) {
	buf := &bytes.Buffer{}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "unable to read manifest")
	}

	raw := rawManifest{}
	if err := toml.Unmarshal(buf.Bytes(), &raw); err != nil {
		return nil, errors.Wrap(err, "unable to parse manifest as TOML")
	}

	m := &Manifest{}
	for _, rc := range raw.Classes {
		m.Classes = append(m.Classes, ClassDef{
			Name:         rc.Name,
			Superclasses: rc.Superclasses,
			Mixins:       rc.Mixins,
			Filters:      rc.Filters,
			Methods:      rc.Methods,
			Constructor:  rc.Constructor,
			Destructor:   rc.Destructor,
		})
	}
	for _, ro := range raw.Objects {
		m.Objects = append(m.Objects, ObjectDef{
			Name:    ro.Name,
			Class:   ro.Class,
			Mixins:  ro.Mixins,
			Filters: ro.Filters,
			Methods: ro.Methods,
		})
	}
	return m, nil
}

// Build instantiates a Foundation, every declared Class (wired to its
// superclasses, mixins and filters, with a public method for each declared
// method name), and every declared Object, resolving named references in
// two passes so forward references between classes work regardless of
// declaration order. impl supplies the MethodImplementor shared by every
// method, constructor and destructor Build creates.
func (m *Manifest) Build(unknownMethodName string, impl MethodImplementor) (*Foundation, map[string]*Class, map[string]*Object, error) {
	f := NewFoundation(unknownMethodName)

	classes := make(map[string]*Class, len(m.Classes))
	for _, cd := range m.Classes {
		classes[cd.Name] = NewClass(cd.Name)
	}

	lookupClass := func(name string) (*Class, error) {
		c, ok := classes[name]
		if !ok {
			return nil, errors.Errorf("manifest: undefined class %q", name)
		}
		return c, nil
	}

	for _, cd := range m.Classes {
		c := classes[cd.Name]
		for _, superName := range cd.Superclasses {
			super, err := lookupClass(superName)
			if err != nil {
				return nil, nil, nil, err
			}
			c.AddSuperclass(super)
		}
		for _, mixinName := range cd.Mixins {
			mixin, err := lookupClass(mixinName)
			if err != nil {
				return nil, nil, nil, err
			}
			c.AddMixin(mixin)
		}
		for _, filterName := range cd.Filters {
			c.AddFilter(filterName)
		}
		for _, methodName := range cd.Methods {
			c.SetMethod(NewMethod(methodName, Public, impl))
		}
		if cd.Constructor != "" {
			ctor := NewMethod(cd.Constructor, Public, impl)
			ctor.DeclaringClass = c
			c.Constructor = ctor
		}
		if cd.Destructor != "" {
			dtor := NewMethod(cd.Destructor, Public, impl)
			dtor.DeclaringClass = c
			c.Destructor = dtor
		}
	}

	objects := make(map[string]*Object, len(m.Objects))
	for _, od := range m.Objects {
		class, err := lookupClass(od.Class)
		if err != nil {
			return nil, nil, nil, err
		}
		obj := NewObject(class)
		for _, mixinName := range od.Mixins {
			mixin, err := lookupClass(mixinName)
			if err != nil {
				return nil, nil, nil, err
			}
			obj.AddMixin(mixin)
		}
		for _, filterName := range od.Filters {
			obj.AddFilter(filterName)
		}
		for _, methodName := range od.Methods {
			obj.SetMethod(NewMethod(methodName, Public, impl))
		}
		objects[od.Name] = obj
	}

	return f, classes, objects, nil
}

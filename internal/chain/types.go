// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chain implements the method resolution core of a dynamic object
// system: class-hierarchy linearization, call-chain construction (with
// filter insertion and come-as-late-as-possible deduplication), per-object
// chain caching, and step-wise chain invocation.
package chain

// Visibility is a method's own declared visibility.
type Visibility uint8

const (
	Public Visibility = iota
	Private
)

// Status is the result code of a chain step, passed through verbatim from
// whatever the Method Implementor returned.
type Status int

const (
	StatusOK Status = iota
	StatusError
	StatusBreak
	StatusContinue
	StatusReturn
)

// InvocationEnv carries the opaque, host-owned state a Method Implementor
// needs: a handle back to the interpreter, private data threaded through by
// whoever registered the implementor, and the raw argument vector.
type InvocationEnv struct {
	Interp      interface{}
	PrivateData interface{}
	Argv        []string
}

// MethodImplementor is the opaque callable a host registers for a Method.
// The core never inspects its behavior; it only ever invokes it.
type MethodImplementor func(env *InvocationEnv, ctx *CallContext) (Status, error)

// Method is a named implementation, or a placeholder that records
// visibility only (Implementor == nil; placeholders never appear in chains).
type Method struct {
	Name           string
	Visibility     Visibility
	DeclaringClass *Class // nil means declared directly on an Object
	Implementor    MethodImplementor
}

// IsPlaceholder reports whether m records visibility only and must never
// appear in a call chain.
func (m *Method) IsPlaceholder() bool {
	return m == nil || m.Implementor == nil
}

// NewMethod builds a Method with a concrete implementor.
func NewMethod(name string, vis Visibility, impl MethodImplementor) *Method {
	return &Method{Name: name, Visibility: vis, Implementor: impl}
}

// Class is an identity node in the type lattice.
type Class struct {
	Name string

	Superclasses []*Class
	Mixins       []*Class
	Filters      []string
	Constructor  *Method
	Destructor   *Method

	methods map[string]*Method

	hierarchy      []*Class
	hierarchyEpoch int64
}

// NewClass creates a Class with no supers, mixins, filters or methods.
func NewClass(name string) *Class {
	return &Class{Name: name, methods: make(map[string]*Method)}
}

// SetMethod installs m under its own name, stamping DeclaringClass.
func (c *Class) SetMethod(m *Method) {
	m.DeclaringClass = c
	c.methods[m.Name] = m
}

// Method looks up a method declared directly on c (not its supers/mixins).
func (c *Class) Method(name string) (*Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// AddSuperclass appends a superclass; order matters for linearization.
func (c *Class) AddSuperclass(super *Class) {
	c.Superclasses = append(c.Superclasses, super)
}

// AddMixin appends a mixin class.
func (c *Class) AddMixin(mixin *Class) {
	c.Mixins = append(c.Mixins, mixin)
}

// AddFilter declares name as a filter method of c.
func (c *Class) AddFilter(name string) {
	c.Filters = append(c.Filters, name)
}

// Object is an instance of a Class.
type Object struct {
	SelfClass *Class
	Mixins    []*Class
	Filters   []string

	methods map[string]*Method

	filterHandling bool
	localEpoch     int64

	cache contextCache
}

// NewObject creates an Object whose identity class is self.
func NewObject(self *Class) *Object {
	return &Object{
		SelfClass: self,
		methods:   make(map[string]*Method),
		cache:     newLiveCache(),
	}
}

// SetMethod installs a per-instance method.
func (o *Object) SetMethod(m *Method) {
	o.methods[m.Name] = m
}

// Method looks up a method declared directly on the object (not its class).
func (o *Object) Method(name string) (*Method, bool) {
	m, ok := o.methods[name]
	return m, ok
}

// AddMixin appends a mixin applied to this object only.
func (o *Object) AddMixin(mixin *Class) {
	o.Mixins = append(o.Mixins, mixin)
}

// AddFilter declares name as a filter applied to this object only.
func (o *Object) AddFilter(name string) {
	o.Filters = append(o.Filters, name)
}

// FilterHandling reports whether this object is currently executing inside
// a filter body (the Invoker's reentrancy guard, spec.md §5).
func (o *Object) FilterHandling() bool {
	return o.filterHandling
}

// Foundation is process-wide state shared by every Class and Object.
type Foundation struct {
	ObjectClass       *Class
	UnknownMethodName string

	globalEpoch int64
}

// NewFoundation creates a Foundation with a fresh root object_class and the
// given fallback name for unresolved methods.
func NewFoundation(unknownMethodName string) *Foundation {
	return &Foundation{
		ObjectClass:       NewClass("object"),
		UnknownMethodName: unknownMethodName,
		globalEpoch:       1,
	}
}

// GlobalEpoch returns the current class-graph structure epoch.
func (f *Foundation) GlobalEpoch() int64 {
	return f.globalEpoch
}

// BumpGlobalEpoch must be called by any collaborator that mutates a Class's
// structure (supers, mixins, filters, methods, constructor, destructor).
func BumpGlobalEpoch(f *Foundation) {
	f.globalEpoch++
}

// LocalEpoch returns the current object-structure epoch.
func (o *Object) LocalEpoch() int64 {
	return o.localEpoch
}

// BumpLocalEpoch must be called by any collaborator that mutates an
// Object's structure (methods, mixins, filters).
func BumpLocalEpoch(o *Object) {
	o.localEpoch++
}

// CallChainEntry is one step of a resolved call chain.
type CallChainEntry struct {
	Method         *Method
	IsFilter       bool
	FilterDeclarer *Class // unset for non-filter entries and object-declared filters
}

// Outcome carries output markers produced while resolving a CallContext.
type Outcome struct {
	Unknown bool
}

// inlineChainCapacity mirrors CALL_CHAIN_STATIC_SIZE: most chains are short,
// so builds start with this much capacity to dodge the first reallocations.
const inlineChainCapacity = 8

// CallContext is the result of resolving (object, name, modes): an ordered
// chain plus the cursor and epoch snapshot needed to drive and cache it.
type CallContext struct {
	Name  string
	Chain []CallChainEntry
	Index int

	// Skip is the count of leading argv elements the implementor should
	// drop to reach its first real argument (typically 2: subject name
	// and method name). buildCallContext always sets it to 2; the core
	// never reads InvocationEnv.Argv itself.
	Skip int

	Modes   ModeSet
	Outcome Outcome

	GlobalEpoch int64
	LocalEpoch  int64

	Object *Object
}

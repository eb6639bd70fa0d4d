// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mrc is the public face of the method resolution core: given an
// object, a method name, and an invocation mode, it builds an ordered call
// chain and drives it step by step, caching chains across calls until the
// class graph or the object's own structure changes.
//
// The heavy lifting lives in internal/chain; this package re-exports its
// types and the handful of entry points a host needs (Resolve, InvokeStep,
// Release, ListMethods, and the epoch bumpers) so that internal/chain stays
// free to change shape without breaking callers.
package mrc

import "github.com/coreobj/mrc/internal/chain"

type (
	// Visibility is a method's own declared visibility.
	Visibility = chain.Visibility
	// Status is the result code of a chain step.
	Status = chain.Status
	// InvocationEnv carries the opaque state a Method Implementor needs.
	InvocationEnv = chain.InvocationEnv
	// MethodImplementor is the opaque callable a host registers for a Method.
	MethodImplementor = chain.MethodImplementor
	// Method is a named implementation, or a visibility-only placeholder.
	Method = chain.Method
	// Class is an identity node in the type lattice.
	Class = chain.Class
	// Object is an instance of a Class.
	Object = chain.Object
	// Foundation is process-wide state shared by every Class and Object.
	Foundation = chain.Foundation
	// CallChainEntry is one step of a resolved call chain.
	CallChainEntry = chain.CallChainEntry
	// Outcome carries output markers produced while resolving a CallContext.
	Outcome = chain.Outcome
	// CallContext is the result of resolving (object, name, modes).
	CallContext = chain.CallContext
	// ModeSet is a caller-supplied combination of invocation intents.
	ModeSet = chain.ModeSet
)

const (
	Public  = chain.Public
	Private = chain.Private

	StatusOK       = chain.StatusOK
	StatusError    = chain.StatusError
	StatusBreak    = chain.StatusBreak
	StatusContinue = chain.StatusContinue
	StatusReturn   = chain.StatusReturn

	ModePublic         = chain.ModePublic
	ModePrivate        = chain.ModePrivate
	ModeConstructor    = chain.ModeConstructor
	ModeDestructor     = chain.ModeDestructor
	ModeFilterHandling = chain.ModeFilterHandling
)

var (
	// ErrHierarchyCycle is returned when a class's superclass graph
	// contains a cycle.
	ErrHierarchyCycle = chain.ErrHierarchyCycle
	// ErrChainExhausted is returned by InvokeStep once a chain is spent.
	ErrChainExhausted = chain.ErrChainExhausted
)

// NewFoundation creates a Foundation with a fresh root object_class and the
// given fallback name for unresolved methods.
func NewFoundation(unknownMethodName string) *Foundation {
	return chain.NewFoundation(unknownMethodName)
}

// NewClass creates a Class with no supers, mixins, filters or methods.
func NewClass(name string) *Class {
	return chain.NewClass(name)
}

// NewObject creates an Object whose identity class is self.
func NewObject(self *Class) *Object {
	return chain.NewObject(self)
}

// NewMethod builds a Method with a concrete implementor.
func NewMethod(name string, vis Visibility, impl MethodImplementor) *Method {
	return chain.NewMethod(name, vis, impl)
}

// BumpGlobalEpoch must be called by any collaborator that mutates a Class's
// structure (supers, mixins, filters, methods, constructor, destructor).
func BumpGlobalEpoch(f *Foundation) {
	chain.BumpGlobalEpoch(f)
}

// BumpLocalEpoch must be called by any collaborator that mutates an
// Object's structure (methods, mixins, filters).
func BumpLocalEpoch(o *Object) {
	chain.BumpLocalEpoch(o)
}

// Resolve produces a CallContext for (obj, name, modes), reusing a cached
// chain when the class graph and the object's own structure are unchanged
// since it was last released.
func Resolve(f *Foundation, obj *Object, name string, modes ModeSet) (*CallContext, error) {
	return chain.Resolve(f, obj, name, modes)
}

// Release returns ctx to its object's cache once the caller is done driving
// it, when ctx is eligible to be cached at all.
func Release(f *Foundation, obj *Object, ctx *CallContext) {
	chain.Release(f, obj, ctx)
}

// InvokeStep runs ctx's current chain entry and advances the cursor.
func InvokeStep(env *InvocationEnv, ctx *CallContext) (Status, error) {
	return chain.InvokeStep(env, ctx)
}

// Next advances ctx and invokes its next chain entry; the mechanism a
// Method Implementor uses to call its next most-general namesake.
func Next(env *InvocationEnv, ctx *CallContext) (Status, error) {
	return chain.Next(env, ctx)
}

// ListMethods returns the sorted, deduplicated set of method names visible
// on obj. modes selects among the three enumeration modes: 0, ModePublic,
// or ModePrivate (see internal/chain.ListMethods).
func ListMethods(f *Foundation, obj *Object, modes ModeSet) ([]string, error) {
	return chain.ListMethods(f, obj, modes)
}

// IsPinned reports whether m is currently referenced by an in-flight
// CallContext and must not be structurally deleted.
func IsPinned(m *Method) bool {
	return chain.IsPinned(m)
}

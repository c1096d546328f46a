/*
Package extension implements syndication extensions: handlers for
foreign XML namespaces embedded in feed documents, such as iTunes
podcast tags or Feed History markers.

Extensions and factories

An Extension parses and writes the elements and attributes of one XML
namespace. A Factory describes an extension type and creates fresh
instances of it; Prototype derives a Factory from any zero value
Extension.

Registry

A Registry is a caller-owned set of factories. It is safe for
concurrent use: lookups made while filling documents in parallel may
proceed while other goroutines register or unregister factories.

Adapter

While a dialect adapter fills a value object from an element, it hands
the element to an Adapter. The Adapter collects the distinct foreign
namespaces used by the element's attributes and element children, in
document order, skipping the dialect's native namespaces. Each
namespace is looked up in the Registry and every matching factory
creates an instance which loads itself from the same element. An
instance is attached to the target only when it recognized at least one
field, and a target never holds two instances of the same extension
type.

An extension which fails to load (by returning an error or panicking)
is isolated: the failure is logged, counted by the Adapter and the
instance is dropped, while the fill of the enclosing document carries
on.
*/
package extension
